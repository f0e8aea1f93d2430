package record

import (
	"github.com/mauriciobenjamin700/regexm/pkg/password"
	"github.com/mauriciobenjamin700/regexm/pkg/validator"
)

// Field names used in Report.Fields and Report.FieldErrors.
const (
	FieldCNH             = "cnh"
	FieldCRV             = "crv"
	FieldPlate           = "plate"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"

	// fieldDriver carries the error of a driver record with every field empty.
	fieldDriver = "driver"
)

var (
	driverFields = []string{FieldCNH, FieldCRV, FieldPlate}
	userFields   = []string{FieldName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword}
)

// Catalog keys. Each key has a "summary" message and may have a "field" one.
const (
	keyRequired         = "record.required"
	keyName             = "record.name"
	keyEmail            = "record.email"
	keyPassword         = "record.password"
	keyConfirmPassword  = "record.confirm_password"
	keyPhone            = "record.phone"
	keyCNH              = "record.cnh"
	keyCRV              = "record.crv"
	keyPlate            = "record.plate"
	keyDriverIncomplete = "record.driver_incomplete"
)

func keyed(rule validator.Rule, key string) validator.Rule {
	rule.Error.TranslationKey = key
	return rule
}

func driverIncomplete() validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:          fieldDriver,
			Message:        "all driver fields are required",
			TranslationKey: keyDriverIncomplete,
		},
	}
}

// driverRules short-circuits to a single failing rule when every field is
// empty. Otherwise each field is checked on its own.
func driverRules(cnh, crv, plate string) []validator.Rule {
	if cnh == "" && crv == "" && plate == "" {
		return []validator.Rule{driverIncomplete()}
	}

	return []validator.Rule{
		keyed(validator.ValidCNH(FieldCNH, cnh), keyCNH),
		keyed(validator.ValidCRV(FieldCRV, crv), keyCRV),
		keyed(validator.ValidPlate(FieldPlate, plate), keyPlate),
	}
}

// userRules reports missing fields first. Value checks run only for fields
// that are present, and the confirmation is compared only when supplied,
// even if it is empty.
func userRules(u User) []validator.Rule {
	rules := make([]validator.Rule, 0, 9)
	for _, f := range []struct{ name, value string }{
		{FieldName, u.Name},
		{FieldEmail, u.Email},
		{FieldPhone, u.Phone},
		{FieldPassword, u.Password},
	} {
		rules = append(rules, keyed(validator.Required(f.name, f.value), keyRequired))
	}

	rules = append(rules,
		validator.When(u.Name != "", keyed(validator.NotBlank(FieldName, u.Name), keyName)),
		validator.When(u.Email != "", keyed(validator.ValidEmail(FieldEmail, u.Email), keyEmail)),
		validator.When(u.Password != "", keyed(validator.MinPasswordLength(FieldPassword, u.Password, password.MinLength), keyPassword)),
	)

	if u.ConfirmPassword != nil {
		rules = append(rules, keyed(validator.PasswordsMatch(FieldConfirmPassword, u.Password, *u.ConfirmPassword), keyConfirmPassword))
	}

	return append(rules,
		validator.When(u.Phone != "", keyed(validator.ValidBrazilianPhone(FieldPhone, u.Phone), keyPhone)),
	)
}
