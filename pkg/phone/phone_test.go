package phone_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciobenjamin700/regexm/pkg/phone"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "eleven digits", input: "11987654321", expected: "(11) 98765-4321"},
		{name: "already formatted", input: "(11) 98765-4321", expected: "(11) 98765-4321"},
		{name: "spaces and hyphen", input: "11 98765-4321", expected: "(11) 98765-4321"},
		{name: "other area code", input: "(21) 98765-4321", expected: "(21) 98765-4321"},
		{name: "ten digits gain mobile nine", input: "1187654321", expected: "(11) 98765-4321"},
		{name: "forced nine truncates last digit", input: "11812345678", expected: "(11) 98123-4567"},
		{name: "extra digits are dropped", input: "119876543210999", expected: "(11) 98765-4321"},
		{name: "partial subscriber", input: "12345", expected: "(12) 9345"},
		{name: "three digits", input: "123", expected: "(12) 93"},
		{name: "only mobile nine", input: "119", expected: "(11) 9"},
		{name: "area code only", input: "12", expected: "(12)"},
		{name: "single digit passthrough", input: "1", expected: "1"},
		{name: "single digit with noise", input: "(1", expected: "1"},
		{name: "empty", input: "", expected: ""},
		{name: "letters only", input: "abc", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, phone.Format(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("splits area code and subscriber", func(t *testing.T) {
		n, ok := phone.Normalize("(11) 8765-4321")
		require.True(t, ok)
		assert.Equal(t, phone.Number{AreaCode: "11", Subscriber: "987654321"}, n)
		assert.Equal(t, "(11) 98765-4321", n.String())
	})

	t.Run("empty subscriber stays empty", func(t *testing.T) {
		n, ok := phone.Normalize("21")
		require.True(t, ok)
		assert.Equal(t, "21", n.AreaCode)
		assert.Empty(t, n.Subscriber)
	})

	t.Run("fewer than two digits", func(t *testing.T) {
		_, ok := phone.Normalize("9")
		assert.False(t, ok)
	})

	t.Run("subscriber always starts with nine", func(t *testing.T) {
		for _, raw := range []string{"110", "1112345678", "11000000000", "4798765432"} {
			n, ok := phone.Normalize(raw)
			require.True(t, ok)
			assert.True(t, strings.HasPrefix(n.Subscriber, "9"), raw)
			assert.LessOrEqual(t, len(n.Subscriber), 9, raw)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "11912345678", expected: true},
		{input: "(21) 98765-4321", expected: true},
		{input: "11 98765-4321", expected: true},
		{input: "1187654321", expected: true},
		{input: "1234", expected: false},
		{input: "123", expected: false},
		{input: "119876543210", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, phone.Validate(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11912345678", phone.Clean("(11) 91234-5678"))
	assert.Equal(t, "21987654321", phone.Clean("21 98765 4321"))
	assert.Equal(t, "1234", phone.Clean("1234"))
	assert.Equal(t, "119876543210999", phone.Clean("119876543210999"))
}

func TestIsValidDDD(t *testing.T) {
	t.Parallel()

	t.Run("known codes", func(t *testing.T) {
		for _, code := range []string{"11", "21", "27", "31", "41", "51", "61", "68", "71", "79", "81", "91", "96", "99"} {
			assert.True(t, phone.IsValidDDD(code), code)
		}
	})

	t.Run("unknown codes", func(t *testing.T) {
		for _, code := range []string{"00", "10", "20", "23", "25", "26", "29", "30", "36", "39", "40", "50", "52", "56", "60", "70", "72", "76", "78", "80", "90"} {
			assert.False(t, phone.IsValidDDD(code), code)
		}
	})

	t.Run("exact membership only", func(t *testing.T) {
		assert.False(t, phone.IsValidDDD("1"))
		assert.False(t, phone.IsValidDDD("111"))
		assert.False(t, phone.IsValidDDD(" 11"))
		assert.False(t, phone.IsValidDDD("(11)"))
		assert.False(t, phone.IsValidDDD(""))
	})

	t.Run("table size", func(t *testing.T) {
		count := 0
		for i := 0; i < 100; i++ {
			code := string([]byte{byte('0' + i/10), byte('0' + i%10)})
			if phone.IsValidDDD(code) {
				count++
			}
		}
		assert.Equal(t, 66, count)
	})
}

func TestHasValidDDD(t *testing.T) {
	t.Parallel()

	assert.True(t, phone.HasValidDDD("(11) 98765-4321"))
	assert.True(t, phone.HasValidDDD("4787654321"))
	assert.False(t, phone.HasValidDDD("(20) 98765-4321"))
	assert.False(t, phone.HasValidDDD("1234"))
}

func FuzzFormat(f *testing.F) {
	f.Add("1187654321")
	f.Add("11987654321")
	f.Add("123")
	f.Add("1")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		once := phone.Format(input)
		if twice := phone.Format(once); twice != once {
			t.Errorf("Format not idempotent: %q -> %q -> %q", input, once, twice)
		}
	})
}
