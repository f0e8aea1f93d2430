package document

import (
	"regexp"

	"github.com/mauriciobenjamin700/regexm/pkg/sanitizer"
)

var (
	crvRegex = regexp.MustCompile(`^[A-Z0-9]{11}$`)

	cleanCRV = sanitizer.Compose(sanitizer.RemoveWhitespace, sanitizer.ToUpper)
)

// ValidateCRV reports whether raw holds eleven letters or digits once
// whitespace is removed. Case is ignored.
func ValidateCRV(raw string) bool {
	return crvRegex.MatchString(cleanCRV(raw))
}

// FormatCRV removes whitespace and uppercases.
func FormatCRV(raw string) string {
	return cleanCRV(raw)
}

func IsCRVFormat(raw string) bool {
	return ValidateCRV(raw)
}
