// Package password scores passwords against a fixed five-rule policy and
// provides the simpler length and confirmation checks used by sign-up forms.
//
// Assess evaluates minimum length, lowercase, uppercase, digit and special
// character presence. Each satisfied rule adds one point. A password is
// acceptable when it reaches MinLength and scores at least AcceptableScore;
// length is a hard gate, the other four rules only count towards the score.
package password

import (
	"regexp"
	"unicode/utf8"
)

const (
	// MinLength is the minimum number of characters of an acceptable password.
	MinLength = 8
	// AcceptableScore is the lowest score of an acceptable password.
	AcceptableScore = 3
	// MaxScore is reached when every rule is satisfied.
	MaxScore = 5
)

// Rule names one of the scoring rules.
type Rule string

const (
	RuleMinLength Rule = "min_length"
	RuleLowercase Rule = "lowercase"
	RuleUppercase Rule = "uppercase"
	RuleDigit     Rule = "digit"
	RuleSpecial   Rule = "special"
)

// Rules lists every rule in evaluation order.
var Rules = []Rule{RuleMinLength, RuleLowercase, RuleUppercase, RuleDigit, RuleSpecial}

var (
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// Failure messages, in evaluation order.
const (
	MsgMinLength = "Password must be at least 8 characters long"
	MsgLowercase = "Password must contain lowercase letters"
	MsgUppercase = "Password must contain uppercase letters"
	MsgDigit     = "Password must contain numbers"
	MsgSpecial   = "Password must contain special characters"
)

// Assessment is the outcome of Assess.
type Assessment struct {
	Score        int      `json:"score"`
	Acceptable   bool     `json:"valid"`
	Errors       []string `json:"errors"`
	HasMinLength bool     `json:"has_min_length"`
	HasLowercase bool     `json:"has_lowercase"`
	HasUppercase bool     `json:"has_uppercase"`
	HasDigit     bool     `json:"has_digit"`
	HasSpecial   bool     `json:"has_special"`
}

// Satisfies reports whether rule r passed.
func (a Assessment) Satisfies(r Rule) bool {
	switch r {
	case RuleMinLength:
		return a.HasMinLength
	case RuleLowercase:
		return a.HasLowercase
	case RuleUppercase:
		return a.HasUppercase
	case RuleDigit:
		return a.HasDigit
	case RuleSpecial:
		return a.HasSpecial
	default:
		return false
	}
}

// Satisfied returns the passing rules in evaluation order.
func (a Assessment) Satisfied() []Rule {
	rules := make([]Rule, 0, len(Rules))
	for _, r := range Rules {
		if a.Satisfies(r) {
			rules = append(rules, r)
		}
	}
	return rules
}

// Assess scores value against every rule. Errors lists one message per
// failed rule, in evaluation order, and is never nil.
func Assess(value string) Assessment {
	a := Assessment{Errors: []string{}}

	check := func(ok bool, flag *bool, msg string) {
		*flag = ok
		if ok {
			a.Score++
			return
		}
		a.Errors = append(a.Errors, msg)
	}

	check(ValidateLength(value, MinLength), &a.HasMinLength, MsgMinLength)
	check(lowercaseRegex.MatchString(value), &a.HasLowercase, MsgLowercase)
	check(uppercaseRegex.MatchString(value), &a.HasUppercase, MsgUppercase)
	check(digitRegex.MatchString(value), &a.HasDigit, MsgDigit)
	check(specialCharRegex.MatchString(value), &a.HasSpecial, MsgSpecial)

	a.Acceptable = a.HasMinLength && a.Score >= AcceptableScore
	return a
}

// ValidateLength reports whether value has at least min characters.
// Characters are counted as runes, not bytes.
func ValidateLength(value string, min int) bool {
	return utf8.RuneCountInString(value) >= min
}

// Match reports whether the confirmation equals the password exactly.
func Match(password, confirm string) bool {
	return password == confirm
}
