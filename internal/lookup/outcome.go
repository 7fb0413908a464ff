package lookup

import (
	"consulta/internal/identifier"
	"consulta/internal/registry/pipeline"
	"consulta/internal/registry/records"
	"consulta/internal/validator"
)

// Outcome is the terminal result for one input. Exactly one of Record or Err
// is meaningful when Status is resolved or exhausted; rejected outcomes carry
// the validation verdict instead.
type Outcome struct {
	Query      string                `json:"query"`
	Type       identifier.Type       `json:"type"`
	Confidence identifier.Confidence `json:"confidence,omitempty"`
	Candidates []identifier.Type     `json:"candidates,omitempty"`
	Status     pipeline.Status       `json:"status"`
	Validation *validator.Outcome    `json:"validation,omitempty"`
	Record     records.Record        `json:"record,omitempty"`
	Error      string                `json:"error,omitempty"`

	// Err carries the coded error for programmatic use; Error mirrors its
	// message for serialization.
	Err error `json:"-"`
}

func (o Outcome) withError(err error) Outcome {
	o.Err = err
	if err != nil {
		o.Error = err.Error()
	}
	return o
}

// BulkResult is the ordered output of one bulk run.
type BulkResult struct {
	RunID    string    `json:"run_id"`
	Outcomes []Outcome `json:"outcomes"`
}
