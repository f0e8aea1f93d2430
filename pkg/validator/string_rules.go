package validator

import "strings"

// Required fails when value is the empty string. Whitespace counts as content.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotBlank fails when value is empty after trimming whitespace.
func NotBlank(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be blank",
			TranslationKey: "validation.not_blank",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
