package sanitizer

import "regexp"

var nonDigitRegex = regexp.MustCompile(`\D`)
