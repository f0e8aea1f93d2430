package validator

import "github.com/mauriciobenjamin700/regexm/pkg/document"

func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return document.ValidateCPF(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCNH requires exactly eleven digits with matching check digits.
func ValidCNH(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return document.ValidateCNH(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid CNH",
			TranslationKey: "validation.cnh",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidCRV(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return document.ValidateCRV(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid CRV",
			TranslationKey: "validation.crv",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPlate accepts both the old and the Mercosul layout.
func ValidPlate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return document.ValidatePlate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid license plate",
			TranslationKey: "validation.plate",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidOldPlate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return document.IsOldFormatPlate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "license plate must use the old layout (ABC1234)",
			TranslationKey: "validation.plate_old",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidMercosulPlate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return document.IsMercosulFormatPlate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "license plate must use the Mercosul layout (ABC1D23)",
			TranslationKey: "validation.plate_mercosul",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
