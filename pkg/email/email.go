package email

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate reports whether address matches local@domain.tld. Any Unicode
// whitespace rejects the address, not only the ASCII set matched by \s.
func Validate(address string) bool {
	if strings.ContainsFunc(address, unicode.IsSpace) {
		return false
	}
	return emailRegex.MatchString(address)
}

func IsFormat(address string) bool {
	return Validate(address)
}

// ExtractDomain returns the part after '@' of a valid address, or "".
func ExtractDomain(address string) string {
	_, domain, ok := split(address)
	if !ok {
		return ""
	}
	return domain
}

// ExtractUsername returns the part before '@' of a valid address, or "".
func ExtractUsername(address string) string {
	username, _, ok := split(address)
	if !ok {
		return ""
	}
	return username
}

func split(address string) (username, domain string, ok bool) {
	if !Validate(address) {
		return "", "", false
	}
	return strings.Cut(address, "@")
}
