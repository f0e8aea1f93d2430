package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mauriciobenjamin700/regexm/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no transforms returns input", func(t *testing.T) {
		assert.Equal(t, " raw ", sanitizer.Apply(" raw "))
	})

	t.Run("transforms run in order", func(t *testing.T) {
		result := sanitizer.Apply(" bra-2e19 ",
			sanitizer.RemoveWhitespace,
			sanitizer.RemoveHyphens,
			sanitizer.ToUpper,
		)
		assert.Equal(t, "BRA2E19", result)
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.RemoveWhitespace, sanitizer.ToUpper)

	assert.Equal(t, "A1B2C3D4E5F", clean("a1b2 c3d4e5f"))
	assert.Equal(t, "A1B2C3D4E5F", clean(clean("a1b2 c3d4e5f")))
}
