package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"dsprep/internal/format"
)

// Render writes a human-readable report in the given table mode.
func Render(w io.Writer, r *Report, mode format.Mode) error {
	var b strings.Builder
	if r.Total == 0 {
		fmt.Fprintf(&b, "\n%s: EMPTY\n", r.Name)
		_, err := io.WriteString(w, b.String())
		return err
	}

	heading := "=== " + r.Name + " ==="
	if mode == format.Markdown {
		heading = "## " + r.Name
	}
	fmt.Fprintf(&b, "\n%s\n\n", heading)

	overview := format.NewTable(mode)
	overview.Header("Metric", "Value")
	overview.Row("Total rows", format.Count(r.Total))
	overview.Row("Invalid rows", format.Count(r.Invalid))
	if !r.Empty() {
		overview.Row("Unique justifications", format.Count(r.Unique))
		overview.Row("Duplicate count", fmt.Sprintf("%s (%s)", format.Count(r.Duplicates), format.Percent(r.DuplicateRate)))
		overview.Row("Avg length (chars)", format.Float1(r.AvgChars))
		overview.Row("Avg length (words)", format.Float1(r.AvgWords))
	}
	overview.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	b.WriteString(overview.String())
	b.WriteString("\n")

	issues := format.NewTable(mode)
	issues.Title("Invalid rows by field")
	issues.Header("Field", "Missing", "Wrong type")
	for _, is := range r.Issues {
		issues.Row(is.Field, format.Count(is.Missing), format.Count(is.WrongType))
	}
	issues.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
	)
	if issues.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(issues.String())
		b.WriteString("\n")
	}

	if r.Empty() {
		b.WriteString("\nNo valid rows; skipping statistics.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	unknown := format.NewTable(mode)
	unknown.Header("Label", "Count")
	for _, u := range r.Unknown {
		unknown.Row(u.Label, format.Count(u.Count))
	}
	unknown.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	if unknown.Len() > 0 {
		b.WriteString("\nWARNING: Found labels outside allowed set:\n")
		b.WriteString(unknown.String())
		b.WriteString("\n")
	}

	dist := format.NewTable(mode)
	dist.Title("Label distribution")
	dist.Header("Label", "Count", "Share")
	for _, l := range r.Labels {
		dist.Row(l.Label, format.Count(l.Count), format.Percent(l.Percent))
	}
	dist.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
	)
	b.WriteString("\n")
	b.WriteString(dist.String())
	b.WriteString("\n")

	byLabel := make([]LabelStat, len(r.Labels))
	copy(byLabel, r.Labels)
	sortByLabel(byLabel)
	lens := format.NewTable(mode)
	lens.Title("Per-label avg lengths")
	lens.Header("Label", "Chars", "Words")
	for _, l := range byLabel {
		lens.Row(l.Label, format.Float1(l.AvgChars), format.Float1(l.AvgWords))
	}
	lens.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
	)
	b.WriteString("\n")
	b.WriteString(lens.String())
	b.WriteString("\n")

	dups := format.NewTable(mode)
	dups.Title("Top duplicates")
	dups.Header("Count", "Justification")
	for _, d := range r.TopDuplicates {
		dups.Row(fmt.Sprintf("x%d", d.Count), format.Preview(d.Text, r.previewWidth))
	}
	if dups.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(dups.String())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func sortByLabel(ls []LabelStat) {
	sort.Slice(ls, func(i, k int) bool { return ls[i].Label < ls[k].Label })
}
