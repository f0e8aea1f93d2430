// Package sanitizer provides the normalisation helpers shared by every
// document, phone and contact validator in this module.
//
// The helpers strip non-significant characters from raw user input so the
// validators can work on canonical values:
//
//   - KeepDigits: digits-only extraction (CPF, CNH, phone numbers).
//   - RemoveWhitespace and RemoveChars: targeted character removal (CRV, plates).
//   - Trim and ToUpper: the usual case and whitespace helpers.
//   - NormalizeUnicode: NFC composition for free-text fields such as names.
//
// The higher-order Apply and Compose helpers build reusable pipelines:
//
//	cleanPlate := sanitizer.Compose(
//	    sanitizer.RemoveWhitespace,
//	    sanitizer.RemoveHyphens,
//	    sanitizer.ToUpper,
//	)
//
//	cleanPlate(" bra-2e19 ") // "BRA2E19"
//
// # Error handling
//
// None of the helpers returns an error. Every function is total over its
// input and idempotent: applying it twice yields the same result as applying
// it once.
//
// # Performance
//
// Regular expressions are compiled once at package initialisation. There is
// no other package state, so the helpers are safe for concurrent use.
package sanitizer
