package split

import "dsprep/internal/curate"

// Summary is the label breakdown of one subset.
type Summary struct {
	Name   string              `json:"name"`
	Total  int                 `json:"total"`
	Labels []curate.LabelCount `json:"labels"`
}

// Summarize counts labels in a subset, ordered by descending count then
// ascending label. Records missing the field are counted under "".
func Summarize(name string, records []curate.Record, labelField string) Summary {
	counts := make(map[string]int)
	for _, rec := range records {
		label, _ := rec.Label(labelField)
		counts[label]++
	}
	return Summary{Name: name, Total: len(records), Labels: curate.LabelCounts(counts, len(records))}
}
