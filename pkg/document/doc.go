// Package document validates and formats Brazilian personal and vehicle
// documents: CPF (taxpayer registry), CNH (driver's license), CRV (vehicle
// registration certificate) and vehicle plates in both the legacy and the
// Mercosul layouts.
//
// CPF and CNH carry two modulo-11 check digits. CPFCheckDigits and
// CNHCheckDigits compute them from the first nine digits; the Validate*
// functions recompute and compare. CRV and plates are pure pattern checks.
//
// Formatting is lenient and validation is strict: Format* functions never
// reject input, they strip what is not significant and only apply a mask when
// the cleaned value has the right shape.
//
//	document.ValidateCPF("111.444.777-35") // true
//	document.FormatCPF("11144477735")      // "111.444.777-35"
//	document.ValidateCNH("123.456.789-01") // false, punctuation is rejected
//	document.PlateKindOf("bra-2e19")       // document.PlateMercosul
//
// All functions are pure and safe for concurrent use.
package document
