package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FirstName string `validate:"required,notblank"`
	Email     string `validate:"required,email"`
	Gender    string `validate:"required,oneof=male female"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(&sample{FirstName: "John", Email: "john@example.com", Gender: "male"}))
	})

	t.Run("first violated field wins", func(t *testing.T) {
		err := v.Validate(&sample{FirstName: "   ", Email: "nope", Gender: "x"})
		require.Error(t, err)
		assert.Equal(t, "FirstName is required", v.FirstError(err))

		formatted := v.FormatValidationErrors(err)
		assert.Len(t, formatted, 3)
		assert.Equal(t, "Email must be a valid email address", formatted["Email"])
		assert.Equal(t, "Gender must be one of [male female]", formatted["Gender"])
	})
}
