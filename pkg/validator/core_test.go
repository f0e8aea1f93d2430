package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciobenjamin700/regexm/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field and message pairs in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "cnh", Message: "invalid CNH"})
		errs.Add(validator.ValidationError{Field: "plate", Message: "invalid license plate"})

		assert.Equal(t, "validation failed: cnh: invalid CNH; plate: invalid license plate", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short", TranslationKey: "validation.password_min_length"},
		{Field: "email", Message: "invalid email address"},
		{Field: "password", Message: "passwords do not match"},
	}

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("phone"))
	})

	t.Run("Get returns every message for a field", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "passwords do not match"}, errs.Get("password"))
		assert.Nil(t, errs.Get("phone"))
	})

	t.Run("First returns the earliest failure", func(t *testing.T) {
		first, ok := errs.First("password")
		require.True(t, ok)
		assert.Equal(t, "validation.password_min_length", first.TranslationKey)

		_, ok = errs.First("phone")
		assert.False(t, ok)
	})

	t.Run("GetErrors", func(t *testing.T) {
		assert.Len(t, errs.GetErrors("password"), 2)
		assert.Len(t, errs.GetErrors("email"), 1)
	})

	t.Run("Fields keeps first-seen order without duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})

	t.Run("Messages keeps rule order", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "invalid email address", "passwords do not match"}, errs.Messages())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Maria"),
			validator.ValidPlate("plate", "ABC1234"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in rule order", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidCNH("cnh", "123"),
			validator.Required("name", "Maria"),
			validator.ValidPlate("plate", "INVALID"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "cnh", verrs[0].Field)
		assert.Equal(t, "plate", verrs[1].Field)
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		err := validator.Apply(validator.Required("name", ""))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorIs(t, fmt.Errorf("register: %w", err), validator.ErrValidationFailed)
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	failing := validator.ValidEmail("email", "not-an-email")

	t.Run("skips rule when condition is false", func(t *testing.T) {
		assert.True(t, validator.When(false, failing).Check())
	})

	t.Run("runs rule when condition is true", func(t *testing.T) {
		rule := validator.When(true, failing)
		assert.False(t, rule.Check())
		assert.Equal(t, failing.Error, rule.Error)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("unwraps wrapped errors", func(t *testing.T) {
		original := validator.ValidationErrors{{Field: "cpf", Message: "invalid CPF"}}
		wrapped := fmt.Errorf("wrapped: %w", original)

		assert.Equal(t, original, validator.ExtractValidationErrors(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "cpf"}}))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
}
