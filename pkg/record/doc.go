// Package record validates the two registration records of the module: a
// driver (CNH, CRV and license plate) and a user (name, email, phone and
// password with optional confirmation).
//
// Each record is checked by running the field rules of pkg/validator in a
// fixed order. Every applicable rule runs, so a Report lists all problems at
// once:
//
//	v, err := record.New(ctx, record.WithLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	report := v.ValidateUserData(record.User{Name: "Ana", Password: "abc"})
//	// report.Errors: missing email, missing phone, short password
//
// Messages come from the YAML catalogs embedded under locales/. Brazilian
// Portuguese is the default; English is also shipped. Report.Err exposes the
// underlying validator.ValidationErrors for callers that want field names
// and translation keys instead of rendered text.
//
// ValidateDriverDataSimple and ValidateUserDataSimple skip message rendering
// and only answer whether the record is valid.
package record
