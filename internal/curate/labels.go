package curate

import "sort"

// LabelCount is one row of a label breakdown.
type LabelCount struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// LabelCounts turns per-label counts into rows with percentages of total,
// ordered by SortLabelCounts. A zero total yields zero percentages.
func LabelCounts(counts map[string]int, total int) []LabelCount {
	rows := make([]LabelCount, 0, len(counts))
	for label, c := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(c) / float64(total) * 100
		}
		rows = append(rows, LabelCount{Label: label, Count: c, Percent: pct})
	}
	SortLabelCounts(rows)
	return rows
}

// SortLabelCounts orders rows by descending count, then ascending label.
func SortLabelCounts(rows []LabelCount) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
}
