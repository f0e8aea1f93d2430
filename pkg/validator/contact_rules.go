package validator

import (
	"github.com/mauriciobenjamin700/regexm/pkg/email"
	"github.com/mauriciobenjamin700/regexm/pkg/phone"
)

func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return email.Validate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidBrazilianPhone requires ten or eleven digits once formatting is removed.
func ValidBrazilianPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phone.Validate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "phone number must have 10 or 11 digits",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidDDD requires the first two digits to be an assigned area code.
func ValidDDD(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phone.HasValidDDD(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "unknown area code",
			TranslationKey: "validation.ddd",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidAreaCode checks a bare two-digit area code, without a subscriber number.
func ValidAreaCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phone.IsValidDDD(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "unknown area code",
			TranslationKey: "validation.area_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
