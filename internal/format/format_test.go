package format_test

import (
	"strings"
	"testing"

	"dsprep/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Label", "Count", "Share")
	tb.Row("VALID", 120, "60.0%")
	tb.Row("UNSAFE", 80, "40.0%")
	out := tb.String()

	// ASCII headers are upper-cased by the style.
	for _, want := range []string{"LABEL", "VALID", "60.0%"} {
		if !strings.Contains(strings.ToUpper(out), want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	// StyleLight draws with box characters.
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
	if tb.Len() != 2 {
		t.Errorf("Len = %d, want 2", tb.Len())
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Label", "Count")
	tb.Row("NOT VALID", 30)
	out := tb.String()

	if !strings.Contains(out, "| Label") {
		t.Errorf("expected markdown header with '| Label':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
}

func TestTitle(t *testing.T) {
	ascii := format.NewTable(format.ASCII)
	ascii.Title("TRAIN (n=8)")
	ascii.Header("Label")
	ascii.Row("VALID")
	if out := ascii.String(); !strings.HasPrefix(out, "TRAIN (n=8)\n") {
		t.Errorf("ASCII title should be the first line:\n%s", out)
	}

	md := format.NewTable(format.Markdown)
	md.Title("TRAIN (n=8)")
	md.Header("Label")
	md.Row("VALID")
	if !strings.HasPrefix(md.String(), "### TRAIN (n=8)\n") {
		t.Errorf("Markdown heading missing:\n%s", md.String())
	}
}

func TestTitle_WiderThanTable(t *testing.T) {
	title := "Per-label average justification lengths"
	tb := format.NewTable(format.ASCII)
	tb.Title(title)
	tb.Header("L")
	tb.Row("x")
	out := tb.String()
	if !strings.Contains(out, title) {
		t.Errorf("title should not wrap over a narrow table:\n%s", out)
	}
	if strings.Count(out, title) != 1 {
		t.Errorf("title should appear once:\n%s", out)
	}
}

func TestASCII_NoTitle(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Label")
	tb.Row("VALID")
	if out := tb.String(); !strings.HasPrefix(out, "┌") {
		t.Errorf("untitled table should start with the box border:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Split", "Rows")
	tb.Row("train", 100)
	tb.Row("dev", 20)
	tb.Footer("TOTAL", 120)
	out := tb.String()

	if !strings.Contains(out, "TOTAL") || !strings.Contains(out, "120") {
		t.Errorf("expected footer in output:\n%s", out)
	}
}

func TestColumns_RightAlign(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Name", "Value")
	tb.Row("rows", 12345)
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	if out := tb.String(); !strings.Contains(out, "12345") {
		t.Errorf("expected '12345' in output:\n%s", out)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want format.Mode
	}{
		{"", format.ASCII},
		{"text", format.ASCII},
		{"Markdown", format.Markdown},
		{"md", format.Markdown},
	}
	for _, tc := range tests {
		got, err := format.ParseMode(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := format.ParseMode("html"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}

// --- Helper tests ---

func TestCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range tests {
		if got := format.Count(tc.in); got != tc.want {
			t.Errorf("Count(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := format.Percent(50); got != "50.0%" {
		t.Errorf("Percent(50) = %q", got)
	}
	if got := format.Percent(100.0 / 3); got != "33.3%" {
		t.Errorf("Percent(33.33) = %q", got)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 90, "short"},
		{"exact", 5, "exact"},
		{"hello world", 5, "hello…"},
		{"ééééé", 3, "ééé…"},
		{"", 3, ""},
	}
	for _, tc := range tests {
		if got := format.Preview(tc.in, tc.width); got != tc.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestPreview_NinetyRunes(t *testing.T) {
	s := strings.Repeat("a", 91)
	got := format.Preview(s, 90)
	if got != strings.Repeat("a", 90)+"…" {
		t.Errorf("Preview of 91 runes = %q", got)
	}
	if format.Preview(s[:90], 90) != s[:90] {
		t.Error("90 runes should not be truncated")
	}
}
