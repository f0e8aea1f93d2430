package document

import "fmt"

// CheckDigitPair holds the two verifier digits of a CPF or CNH.
type CheckDigitPair struct {
	First  int
	Second int
}

func (p CheckDigitPair) String() string {
	return fmt.Sprintf("%d%d", p.First, p.Second)
}

// matches reports whether the pair equals the two ASCII digits a and b.
func (p CheckDigitPair) matches(a, b byte) bool {
	return p.First == int(a-'0') && p.Second == int(b-'0')
}

// mod11 reduces a weighted sum to a verifier digit; remainders of 10 collapse to 0.
func mod11(sum int) int {
	r := (sum * 10) % 11
	if r >= 10 {
		return 0
	}
	return r
}

// weightedSum expects digits to contain only '0'-'9'.
func weightedSum(digits string, weight func(i int) int) int {
	sum := 0
	for i := range len(digits) {
		sum += int(digits[i]-'0') * weight(i)
	}
	return sum
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
