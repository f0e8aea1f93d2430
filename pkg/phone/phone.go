package phone

import (
	"strings"

	"github.com/mauriciobenjamin700/regexm/pkg/sanitizer"
)

const (
	maxDigits      = 11
	areaCodeLength = 2
	maxSubscriber  = 9
	prefixLength   = 5
	mobilePrefix   = "9"
	minValidDigits = 10
	maxValidDigits = 11
)

// Number is a phone number split into area code and subscriber part.
// Once Subscriber is non-empty it begins with 9.
type Number struct {
	AreaCode   string `json:"area_code"`
	Subscriber string `json:"subscriber"`
}

// String renders (AA) PPPPP-SSSS, omitting the parts that are not present.
func (n Number) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.AreaCode)
	b.WriteString(")")

	prefix, suffix := n.Subscriber, ""
	if len(prefix) > prefixLength {
		prefix, suffix = n.Subscriber[:prefixLength], n.Subscriber[prefixLength:]
	}
	if prefix != "" {
		b.WriteString(" ")
		b.WriteString(prefix)
	}
	if suffix != "" {
		b.WriteString("-")
		b.WriteString(suffix)
	}

	return strings.TrimSpace(b.String())
}

// Clean removes every non-digit character. Unlike Normalize it does not
// truncate.
func Clean(raw string) string {
	return sanitizer.KeepDigits(raw)
}

// Normalize extracts at most eleven digits from raw, splits off the area code
// and forces the subscriber part to start with 9, keeping at most nine
// subscriber digits. ok is false when fewer than two digits are present.
func Normalize(raw string) (n Number, ok bool) {
	digits := Clean(raw)
	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}
	if len(digits) < areaCodeLength {
		return Number{}, false
	}

	rest := digits[areaCodeLength:]
	if rest != "" && !strings.HasPrefix(rest, mobilePrefix) {
		rest = mobilePrefix + rest
	}
	if len(rest) > maxSubscriber {
		rest = rest[:maxSubscriber]
	}

	return Number{AreaCode: digits[:areaCodeLength], Subscriber: rest}, true
}

// Format returns the display form of raw. Input with fewer than two digits is
// returned as bare digits, without parentheses.
func Format(raw string) string {
	n, ok := Normalize(raw)
	if !ok {
		return Clean(raw)
	}
	return n.String()
}

// Validate reports whether raw has ten or eleven digits. Ten digit numbers are
// accepted because Format completes them with the mobile 9.
func Validate(raw string) bool {
	n := len(Clean(raw))
	return n >= minValidDigits && n <= maxValidDigits
}

// HasValidDDD reports whether raw validates and starts with a known area code.
func HasValidDDD(raw string) bool {
	if !Validate(raw) {
		return false
	}
	return IsValidDDD(Clean(raw)[:areaCodeLength])
}
