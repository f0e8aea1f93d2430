// Package email checks the shape of e-mail addresses and splits them into
// username and domain.
//
// The check is a small structural contract: one '@', no whitespace, and a
// dot somewhere in the domain. It does not resolve domains or parse RFC 5322
// display names.
//
// Whitespace means any rune for which unicode.IsSpace is true, so tabs,
// vertical tabs, no-break spaces and the other Unicode spaces all fail.
// The pattern is anchored at the very end of the input: a trailing newline
// is rejected rather than tolerated the way some regex engines treat '$'.
//
//	email.Validate("maria@example.com")        // true
//	email.ExtractDomain("maria@example.com")   // "example.com"
//	email.ExtractUsername("maria@example.com") // "maria"
package email
