package curate

// FieldSpec describes one required field of a schema and an optional
// validation function for its value.
type FieldSpec struct {
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Validate    func(value any) bool `json:"-" yaml:"-"`
}

// Schema defines the fields every record in a dataset must carry.
type Schema struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}

// IsString is a FieldSpec validator accepting any JSON string, including "".
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// CompletenessResult reports which schema fields a record lacks.
type CompletenessResult struct {
	RecordID string   `json:"record_id"`
	Missing  []string `json:"missing,omitempty"`
	Invalid  []string `json:"invalid,omitempty"`
	Valid    bool     `json:"valid"`
}

// CheckCompleteness evaluates a Record against a Schema.
// A record is valid when every field is present and passes validation.
// A JSON null counts as missing.
func CheckCompleteness(r Record, s Schema) CompletenessResult {
	result := CompletenessResult{
		RecordID: r.ID,
	}

	for _, spec := range s.Fields {
		v, has := r.Get(spec.Name)
		if !has || v == nil {
			result.Missing = append(result.Missing, spec.Name)
			continue
		}
		if spec.Validate != nil && !spec.Validate(v) {
			result.Invalid = append(result.Invalid, spec.Name)
		}
	}

	result.Valid = len(result.Missing) == 0 && len(result.Invalid) == 0
	return result
}
