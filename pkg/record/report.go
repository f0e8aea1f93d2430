package record

import "github.com/mauriciobenjamin700/regexm/pkg/validator"

// Report is the outcome of validating one record. Errors keeps rule order.
// Fields has an entry for every field of the record; FieldErrors only for
// the failing ones.
type Report struct {
	Valid       bool              `json:"valid"`
	Errors      []string          `json:"errors"`
	Fields      map[string]bool   `json:"fields"`
	FieldErrors map[string]string `json:"field_errors"`

	violations validator.ValidationErrors
}

// Err returns the failures as validator.ValidationErrors, or nil when the
// record is valid.
func (r Report) Err() error {
	if len(r.violations) == 0 {
		return nil
	}
	return r.violations
}
