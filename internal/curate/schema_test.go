package curate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rec reads a single JSONL line into a Record with ID "R01".
func rec(t *testing.T, line string) Record {
	t.Helper()
	recs, err := Read(strings.NewReader(line+"\n"), "R01")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Read returned %d records, want 1", len(recs))
	}
	recs[0].ID = "R01"
	return recs[0]
}

func TestCheckCompleteness_AllPresent(t *testing.T) {
	s := Schema{
		Name: "test",
		Fields: []FieldSpec{
			{Name: "justification", Validate: IsString},
			{Name: "label", Validate: IsString},
		},
	}
	r := rec(t, `{"justification":"because","label":"VALID"}`)

	result := CheckCompleteness(r, s)
	if result.RecordID != "R01" {
		t.Errorf("RecordID = %q, want R01", result.RecordID)
	}
	if !result.Valid {
		t.Error("should be valid when all fields present")
	}
	if len(result.Missing) != 0 || len(result.Invalid) != 0 {
		t.Errorf("Missing = %v, Invalid = %v, want both empty", result.Missing, result.Invalid)
	}
}

func TestCheckCompleteness_MissingFields(t *testing.T) {
	s := Schema{
		Name: "test",
		Fields: []FieldSpec{
			{Name: "justification"},
			{Name: "label"},
			{Name: "source"},
		},
	}
	r := rec(t, `{"justification":"because"}`)

	result := CheckCompleteness(r, s)
	if result.Valid {
		t.Error("should not be valid with missing fields")
	}
	if diff := cmp.Diff([]string{"label", "source"}, result.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckCompleteness_WrongType(t *testing.T) {
	s := Schema{
		Name:   "test",
		Fields: []FieldSpec{{Name: "label", Validate: IsString}},
	}
	r := rec(t, `{"label":1}`)

	result := CheckCompleteness(r, s)
	if result.Valid {
		t.Error("should not be valid with a numeric label")
	}
	if diff := cmp.Diff([]string{"label"}, result.Invalid); diff != "" {
		t.Errorf("Invalid mismatch (-want +got):\n%s", diff)
	}
	if len(result.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", result.Missing)
	}
}

func TestCheckCompleteness_NullValue(t *testing.T) {
	s := Schema{
		Name:   "test",
		Fields: []FieldSpec{{Name: "x"}},
	}
	r := rec(t, `{"x":null}`)

	result := CheckCompleteness(r, s)
	if result.Valid {
		t.Error("should not be valid when field value is null")
	}
	if diff := cmp.Diff([]string{"x"}, result.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckCompleteness_EmptySchema(t *testing.T) {
	result := CheckCompleteness(rec(t, `{}`), Schema{Name: "empty"})
	if !result.Valid {
		t.Error("should be valid with no fields")
	}
}

func TestIsString(t *testing.T) {
	if !IsString("") {
		t.Error("empty string is still a string")
	}
	if IsString(json.Number("1")) || IsString(nil) || IsString(true) {
		t.Error("non-strings must be rejected")
	}
}
