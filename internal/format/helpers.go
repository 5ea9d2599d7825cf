package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Ellipsis marks a truncated preview.
const Ellipsis = "…"

// Count formats an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Percent formats a 0-100 value with one decimal, e.g. "12.5%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Float1 formats a value with one decimal.
func Float1(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// Preview returns s unchanged when it has at most width runes, otherwise
// its first width runes followed by Ellipsis.
func Preview(s string, width int) string {
	r := []rune(s)
	if width < 0 || len(r) <= width {
		return s
	}
	return string(r[:width]) + Ellipsis
}
