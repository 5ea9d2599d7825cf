// Package format renders the tables used in split summaries and dataset
// reports. Build a table once and render it as terminal ASCII or as
// GitHub-flavoured Markdown.
package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps a --format value to a Mode. "text" and "" select ASCII.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "text", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return ASCII, fmt.Errorf("format: unknown mode %q", s)
}

// ColumnAlign specifies the horizontal alignment for a column.
type ColumnAlign int

const (
	AlignDefault ColumnAlign = iota
	AlignRight
)

// ColumnConfig controls per-column formatting.
type ColumnConfig struct {
	Number int         // 1-based column index
	Align  ColumnAlign // horizontal alignment
}

// TableBuilder is the project-owned table abstraction.
type TableBuilder interface {
	// Title sets a caption rendered above the table.
	Title(s string)
	// Header sets the column headers.
	Header(cols ...string)
	// Row appends a data row. Values are converted to strings via fmt Sprint.
	Row(vals ...any)
	// Footer appends a footer row (e.g. totals).
	Footer(vals ...any)
	// Columns applies per-column alignment.
	Columns(cfgs ...ColumnConfig)
	// Len returns the number of data rows.
	Len() int
	// String renders the table in the configured Mode.
	String() string
}

// NewTable returns a TableBuilder that renders in the given Mode.
func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &prettyAdapter{writer: w, mode: m}
}

// prettyAdapter wraps go-pretty/v6/table.Writer behind the TableBuilder interface.
type prettyAdapter struct {
	writer table.Writer
	mode   Mode
	title  string
	rows   int
}

func (a *prettyAdapter) Title(s string) {
	a.title = s
}

func (a *prettyAdapter) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	a.writer.AppendHeader(row)
}

func (a *prettyAdapter) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendRow(row)
	a.rows++
}

func (a *prettyAdapter) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendFooter(row)
}

func (a *prettyAdapter) Columns(cfgs ...ColumnConfig) {
	goCfgs := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		goCfgs[i] = table.ColumnConfig{
			Number: c.Number,
			Align:  toTextAlign(c.Align),
		}
	}
	a.writer.SetColumnConfigs(goCfgs)
}

func (a *prettyAdapter) Len() int { return a.rows }

func (a *prettyAdapter) String() string {
	switch a.mode {
	case Markdown:
		// go-pretty drops titles in Markdown output; emit a heading instead.
		if a.title != "" {
			return "### " + a.title + "\n\n" + a.writer.RenderMarkdown()
		}
		return a.writer.RenderMarkdown()
	default:
		// Printed above the box: go-pretty wraps SetTitle to the table width.
		if a.title != "" {
			return a.title + "\n" + a.writer.Render()
		}
		return a.writer.Render()
	}
}

func toTextAlign(a ColumnAlign) text.Align {
	if a == AlignRight {
		return text.AlignRight
	}
	return text.AlignDefault
}
