package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	sentinel := New(CodeNotFound, "doctor not found")

	t.Run("direct", func(t *testing.T) {
		assert.True(t, HasCode(sentinel, CodeNotFound))
		assert.False(t, HasCode(sentinel, CodeBadRequest))
	})

	t.Run("wrapped with fmt", func(t *testing.T) {
		err := fmt.Errorf("load doctor: %w", sentinel)
		assert.True(t, HasCode(err, CodeNotFound))
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, CodeInternal, CodeOf(err))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeInternal, "failed to save")

	assert.Equal(t, "failed to save: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIsIdentity(t *testing.T) {
	assert.True(t, IsIdentity(New(CodeIdentityCreation, "Passwords must have at least one digit ('0'-'9').")))
	assert.True(t, IsIdentity(New(CodeIdentityRole, "Role Nurse does not exist.")))
	assert.False(t, IsIdentity(New(CodeBadRequest, "FirstName is required")))
	assert.False(t, IsIdentity(nil))
}
