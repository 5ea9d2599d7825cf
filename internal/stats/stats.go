// Package stats computes descriptive statistics over a justification
// dataset: schema validity, label distribution, text lengths and exact
// duplicate justifications.
package stats

import (
	"sort"
	"strings"
	"unicode/utf8"

	mstats "github.com/montanaflynn/stats"

	"dsprep/internal/curate"
)

const (
	DefaultTopDuplicates = 10
	DefaultPreviewWidth  = 90
)

// Options tunes Summarize. Zero values select the defaults.
type Options struct {
	AllowedLabels []string
	TopDuplicates int
	PreviewWidth  int
}

func (o Options) withDefaults() Options {
	if o.AllowedLabels == nil {
		o.AllowedLabels = AllowedLabels
	}
	if o.TopDuplicates <= 0 {
		o.TopDuplicates = DefaultTopDuplicates
	}
	if o.PreviewWidth <= 0 {
		o.PreviewWidth = DefaultPreviewWidth
	}
	return o
}

// LabelStat is one label's share and average justification length.
type LabelStat struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
	AvgChars float64 `json:"avg_chars"`
	AvgWords float64 `json:"avg_words"`
}

// Duplicate is a justification text seen more than once.
type Duplicate struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// FieldIssue counts the invalid rows that lack a schema field or carry a
// value of the wrong type for it.
type FieldIssue struct {
	Field     string `json:"field"`
	Missing   int    `json:"missing"`
	WrongType int    `json:"wrong_type"`
}

// Report is the result of summarizing one dataset file.
type Report struct {
	Name          string              `json:"name"`
	Total         int                 `json:"total"`
	Invalid       int                 `json:"invalid"`
	Issues        []FieldIssue        `json:"issues,omitempty"`
	Unique        int                 `json:"unique"`
	Duplicates    int                 `json:"duplicates"`
	DuplicateRate float64             `json:"duplicate_rate"`
	AvgChars      float64             `json:"avg_chars"`
	AvgWords      float64             `json:"avg_words"`
	Labels        []LabelStat         `json:"labels"`
	Unknown       []curate.LabelCount `json:"unknown_labels,omitempty"`
	TopDuplicates []Duplicate         `json:"top_duplicates,omitempty"`

	previewWidth int
}

// Valid returns the number of rows that passed schema validation.
func (r *Report) Valid() int { return r.Total - r.Invalid }

// Empty reports whether there is nothing to derive statistics from.
func (r *Report) Empty() bool { return r.Valid() == 0 }

// PreviewWidth is the rune budget for duplicate previews.
func (r *Report) PreviewWidth() int { return r.previewWidth }

type lengths struct {
	chars mstats.Float64Data
	words mstats.Float64Data
}

func (l *lengths) add(text string) {
	l.chars = append(l.chars, float64(utf8.RuneCountInString(text)))
	l.words = append(l.words, float64(WordCount(text)))
}

// Summarize validates every record against Schema and aggregates the
// valid ones. Invalid rows count toward Total and Invalid only.
func Summarize(name string, records []curate.Record, opts Options) *Report {
	opts = opts.withDefaults()
	allowed := make(map[string]bool, len(opts.AllowedLabels))
	for _, l := range opts.AllowedLabels {
		allowed[l] = true
	}

	rep := &Report{Name: name, Total: len(records), previewWidth: opts.PreviewWidth}
	schema := Schema()

	var (
		overall  lengths
		perLabel = make(map[string]*lengths)
		counts   = make(map[string]int)
		unknown  = make(map[string]int)
		textSeen = make(map[string]int)
		order    []string
	)
	issues := make(map[string]*FieldIssue, len(schema.Fields))
	for _, rec := range records {
		if res := curate.CheckCompleteness(rec, schema); !res.Valid {
			rep.Invalid++
			for _, f := range res.Missing {
				issueFor(issues, f).Missing++
			}
			for _, f := range res.Invalid {
				issueFor(issues, f).WrongType++
			}
			continue
		}
		j, _ := rec.String(JustificationField)
		y, _ := rec.String(LabelField)

		counts[y]++
		overall.add(j)
		if perLabel[y] == nil {
			perLabel[y] = &lengths{}
		}
		perLabel[y].add(j)
		if !allowed[y] {
			unknown[y]++
		}
		if textSeen[j] == 0 {
			order = append(order, j)
		}
		textSeen[j]++
	}

	for _, f := range schema.Fields {
		if is, ok := issues[f.Name]; ok {
			rep.Issues = append(rep.Issues, *is)
		}
	}

	if rep.Empty() {
		return rep
	}

	rep.Unique = len(textSeen)
	rep.Duplicates = rep.Valid() - rep.Unique
	rep.DuplicateRate = float64(rep.Duplicates) / float64(rep.Valid()) * 100
	rep.AvgChars = mean(overall.chars)
	rep.AvgWords = mean(overall.words)

	for label, c := range counts {
		rep.Labels = append(rep.Labels, LabelStat{
			Label:    label,
			Count:    c,
			Percent:  float64(c) / float64(rep.Total) * 100,
			AvgChars: mean(perLabel[label].chars),
			AvgWords: mean(perLabel[label].words),
		})
	}
	sort.Slice(rep.Labels, func(i, k int) bool {
		if rep.Labels[i].Count != rep.Labels[k].Count {
			return rep.Labels[i].Count > rep.Labels[k].Count
		}
		return rep.Labels[i].Label < rep.Labels[k].Label
	})

	if len(unknown) > 0 {
		rep.Unknown = curate.LabelCounts(unknown, rep.Total)
	}

	rep.TopDuplicates = topDuplicates(order, textSeen, opts.TopDuplicates)
	return rep
}

func issueFor(issues map[string]*FieldIssue, field string) *FieldIssue {
	is, ok := issues[field]
	if !ok {
		is = &FieldIssue{Field: field}
		issues[field] = is
	}
	return is
}

func topDuplicates(order []string, seen map[string]int, limit int) []Duplicate {
	var dups []Duplicate
	for _, text := range order {
		if c := seen[text]; c > 1 {
			dups = append(dups, Duplicate{Text: text, Count: c})
		}
	}
	sort.SliceStable(dups, func(i, k int) bool { return dups[i].Count > dups[k].Count })
	if len(dups) > limit {
		dups = dups[:limit]
	}
	return dups
}

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func mean(xs mstats.Float64Data) float64 {
	m, err := mstats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}
