// Package validator builds declarative validation rules for Brazilian
// registration data.
//
// A Rule couples a Check function with translation-friendly error metadata.
// Apply evaluates rules in order and aggregates every failure into a
// ValidationErrors slice that satisfies the error interface, so callers get
// all field problems from a single return value.
//
// Rules are grouped by concern:
//   - string_rules.go    presence checks (Required, NotBlank)
//   - document_rules.go  CPF, CNH, CRV and license plates
//   - contact_rules.go   email, phone number and area code
//   - password_rules.go  length, confirmation and strength
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.When(email != "", validator.ValidEmail("email", email)),
//	    validator.ValidPlate("plate", plate),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// ValidationErrors matches ErrValidationFailed through errors.Is. Use the
// Has, Get, First and GetErrors helpers to inspect individual fields.
//
// The package holds no state and every rule is safe for concurrent use.
package validator
