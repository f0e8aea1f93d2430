package document_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciobenjamin700/regexm/pkg/document"
)

func TestValidateCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid plain digits", input: "11144477735", expected: true},
		{name: "valid with mask", input: "111.444.777-35", expected: true},
		{name: "valid sequential base", input: "12345678909", expected: true},
		{name: "valid with stray spaces", input: " 111 444 777 35 ", expected: true},
		{name: "wrong first check digit", input: "11144477745", expected: false},
		{name: "wrong second check digit", input: "11144477736", expected: false},
		{name: "invalid check digits", input: "123.456.789-00", expected: false},
		{name: "too short", input: "123", expected: false},
		{name: "too long", input: "111444777350", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "letters only", input: "abcdefghijk", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, document.ValidateCPF(tt.input))
		})
	}
}

func TestValidateCPF_RepeatedDigits(t *testing.T) {
	t.Parallel()

	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		assert.False(t, document.ValidateCPF(cpf), "repeated sequence %s must be rejected", cpf)
	}
}

func TestCPFCheckDigits(t *testing.T) {
	t.Parallel()

	t.Run("computes known pair", func(t *testing.T) {
		pair, ok := document.CPFCheckDigits("111444777")
		require.True(t, ok)
		assert.Equal(t, document.CheckDigitPair{First: 3, Second: 5}, pair)
		assert.Equal(t, "35", pair.String())
	})

	t.Run("uses only the first nine digits", func(t *testing.T) {
		pair, ok := document.CPFCheckDigits("111.444.777-99")
		require.True(t, ok)
		assert.Equal(t, "35", pair.String())
	})

	t.Run("rejects short base", func(t *testing.T) {
		_, ok := document.CPFCheckDigits("11144477")
		assert.False(t, ok)
	})

	t.Run("recomputed digits agree with validation", func(t *testing.T) {
		for base := 100000000; base < 100000000+2000; base += 7 {
			digits := fmt.Sprintf("%09d", base)
			pair, ok := document.CPFCheckDigits(digits)
			require.True(t, ok)

			assert.True(t, document.ValidateCPF(digits+pair.String()), "cpf %s%s", digits, pair)

			wrong := fmt.Sprintf("%s%d%d", digits, pair.First, (pair.Second+1)%10)
			assert.False(t, document.ValidateCPF(wrong), "cpf %s", wrong)
		}
	})
}

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "applies mask", input: "11144477735", expected: "111.444.777-35"},
		{name: "keeps existing mask", input: "111.444.777-35", expected: "111.444.777-35"},
		{name: "masks without checking digits", input: "12345678901", expected: "123.456.789-01"},
		{name: "short input is stripped only", input: "123.456.789-0", expected: "1234567890"},
		{name: "long input is stripped only", input: "1234567890123", expected: "1234567890123"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, document.FormatCPF(tt.input))
		})
	}
}

func TestIsCPFFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, document.IsCPFFormat("123.456.789-01"))
	assert.True(t, document.IsCPFFormat("12345678901"))
	assert.False(t, document.IsCPFFormat("1234567890"))
	assert.False(t, document.IsCPFFormat(""))
}

func FuzzFormatCPF(f *testing.F) {
	f.Add("11144477735")
	f.Add("111.444.777-35")
	f.Add("123")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		once := document.FormatCPF(input)
		if twice := document.FormatCPF(once); twice != once {
			t.Errorf("FormatCPF not idempotent: %q -> %q -> %q", input, once, twice)
		}
		if document.ValidateCPF(input) != document.ValidateCPF(once) {
			t.Errorf("formatting changed validity of %q", input)
		}
	})
}
