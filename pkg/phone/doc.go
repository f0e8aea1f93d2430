// Package phone normalises, formats and validates Brazilian phone numbers.
//
// Numbers are treated as mobile numbers: after the two-digit area code (DDD)
// the subscriber part always starts with 9. Format inserts the 9 when it is
// missing, which is why ten digit input validates:
//
//	phone.Format("1187654321")   // "(11) 98765-4321"
//	phone.Format("11987654321")  // "(11) 98765-4321"
//	phone.Format("123")          // "(12) 93", partial input is formatted as far as it goes
//	phone.Validate("1234")       // false
//	phone.IsValidDDD("11")       // true
//
// Validation and formatting are independent: Validate only counts digits,
// IsValidDDD only looks the code up in the national table.
package phone
