// Package regexm validates and formats Brazilian identity documents, vehicle
// records and user registration data.
//
// The module is organised as small packages under pkg/:
//
//   - document: CPF, CNH, CRV and license plate checks, check digits and formatting
//   - email, phone, password: contact data and password strength
//   - validator: the rule engine and the rules used by record
//   - record: driver and user composites with translated messages
//   - tags: go-playground/validator tags backed by the checks above
//   - i18n, logger, config, environment, sanitizer: shared infrastructure
//
// A typical registration flow validates a whole record and shows the
// translated messages:
//
//	v, err := record.New(ctx, record.WithLanguage("pt-BR"))
//	if err != nil {
//		return err
//	}
//	report := v.ValidateUserData(record.User{
//		Name:     "Maria Silva",
//		Email:    "maria@example.com",
//		Phone:    "(11) 98765-4321",
//		Password: "secret123",
//	})
//	if !report.Valid {
//		return report.Err()
//	}
//
// The regexm command in cmd/regexm exposes the same checks on the command
// line.
package regexm
