package stats

import "dsprep/internal/curate"

// Field names every report reads.
const (
	JustificationField = "justification"
	LabelField         = "label"
)

// AllowedLabels is the label vocabulary of the justification dataset.
var AllowedLabels = []string{"VALID", "NOT VALID", "UNSAFE", "NEEDS MORE INFO"}

// Schema returns the row schema: justification and label must both be
// JSON strings.
func Schema() curate.Schema {
	return curate.Schema{
		Name: "justification-row",
		Fields: []curate.FieldSpec{
			{Name: JustificationField, Validate: curate.IsString,
				Description: "free-text justification being labeled"},
			{Name: LabelField, Validate: curate.IsString,
				Description: "categorical outcome"},
		},
	}
}
