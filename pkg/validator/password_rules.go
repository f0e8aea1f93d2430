package validator

import (
	"fmt"

	"github.com/mauriciobenjamin700/regexm/pkg/password"
)

func MinPasswordLength(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return password.ValidateLength(value, min)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be at least %d characters long", min),
			TranslationKey: "validation.password_min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func PasswordsMatch(field, value, confirm string) Rule {
	return Rule{
		Check: func() bool {
			return password.Match(value, confirm)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "passwords do not match",
			TranslationKey: "validation.password_mismatch",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func passwordRule(field, value string, r password.Rule, message string) Rule {
	return Rule{
		Check: func() bool {
			return password.Assess(value).Satisfies(r)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.password_" + string(r),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return passwordRule(field, value, password.RuleLowercase, "password must contain lowercase letters")
}

func PasswordUppercase(field, value string) Rule {
	return passwordRule(field, value, password.RuleUppercase, "password must contain uppercase letters")
}

func PasswordDigit(field, value string) Rule {
	return passwordRule(field, value, password.RuleDigit, "password must contain numbers")
}

func PasswordSpecialChar(field, value string) Rule {
	return passwordRule(field, value, password.RuleSpecial, "password must contain special characters")
}

// AcceptablePassword passes when Assess deems the password acceptable.
func AcceptablePassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return password.Assess(value).Acceptable
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password is too weak",
			TranslationKey: "validation.password_weak",
			TranslationValues: map[string]any{
				"field": field,
				"min":   password.MinLength,
				"score": password.AcceptableScore,
			},
		},
	}
}
