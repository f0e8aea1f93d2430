package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors through errors.Is.
var ErrValidationFailed = errors.New("validation failed")
