// Package tags registers the module's validators as go-playground/validator
// struct tags, so request and form structs can be checked declaratively:
//
//	type DriverForm struct {
//	    CNH   string `validate:"required,cnh"`
//	    CRV   string `validate:"required,crv"`
//	    Plate string `validate:"required,plate_mercosul"`
//	}
//
//	v, err := tags.New()
//	if err != nil {
//	    return err
//	}
//	err = v.Struct(form)
//
// Every tag applies to string fields only; any other kind fails.
package tags

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	rules "github.com/mauriciobenjamin700/regexm/pkg/validator"
)

const (
	CPF           = "cpf"
	CNH           = "cnh"
	CRV           = "crv"
	Plate         = "plate"
	PlateOld      = "plate_old"
	PlateMercosul = "plate_mercosul"
	Phone         = "br_phone"
	PhoneDDD      = "br_phone_ddd"
	DDD           = "ddd"
	Email         = "br_email"
	Password      = "password_strength"

	PasswordLowercase = "password_lowercase"
	PasswordUppercase = "password_uppercase"
	PasswordDigit     = "password_digit"
	PasswordSpecial   = "password_special"
)

// Each tag is backed by the rule of the same check, so struct tags and
// rule lists agree on what passes.
var validations = []struct {
	tag  string
	rule func(field, value string) rules.Rule
}{
	{CPF, rules.ValidCPF},
	{CNH, rules.ValidCNH},
	{CRV, rules.ValidCRV},
	{Plate, rules.ValidPlate},
	{PlateOld, rules.ValidOldPlate},
	{PlateMercosul, rules.ValidMercosulPlate},
	{Phone, rules.ValidBrazilianPhone},
	{PhoneDDD, rules.ValidDDD},
	{DDD, rules.ValidAreaCode},
	{Email, rules.ValidEmail},
	{Password, rules.AcceptablePassword},
	{PasswordLowercase, rules.PasswordLowercase},
	{PasswordUppercase, rules.PasswordUppercase},
	{PasswordDigit, rules.PasswordDigit},
	{PasswordSpecial, rules.PasswordSpecialChar},
}

// Names returns every registered tag in registration order.
func Names() []string {
	names := make([]string, 0, len(validations))
	for _, v := range validations {
		names = append(names, v.tag)
	}
	return names
}

// Register adds every tag to v.
func Register(v *validator.Validate) error {
	for _, val := range validations {
		if err := v.RegisterValidation(val.tag, stringField(val.rule)); err != nil {
			return fmt.Errorf("register %q validation: %w", val.tag, err)
		}
	}
	return nil
}

// New returns a validator with required struct validation enabled and every
// tag registered.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

func stringField(rule func(field, value string) rules.Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return rule(fl.FieldName(), field.String()).Check()
	}
}
