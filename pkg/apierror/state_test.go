package apierror_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipinhq/chipin-go/pkg/apierror"
)

func TestState_Empty(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()

	assert.False(t, s.IsValidationError())
	assert.False(t, s.IsGeneralError())
	assert.Empty(t, s.GeneralError())
	assert.Empty(t, s.FieldErrors())
	assert.False(t, s.HasFieldError("name"))
	assert.Nil(t, s.Err())
}

func TestState_ValidationError(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()
	s.Set(respErr(`{"detail":[
		{"type":"value_error","loc":["body","name"],"msg":"too short"},
		{"type":"value_error","loc":["body","name"],"msg":"invalid chars"},
		{"type":"missing","loc":["body","email"],"msg":"required"}
	]}`))

	assert.True(t, s.IsValidationError())
	assert.False(t, s.IsGeneralError())
	assert.Empty(t, s.GeneralError())

	require.Equal(t, map[string]string{
		"name":  "too short; invalid chars",
		"email": "required",
	}, s.FieldErrors())

	msg, ok := s.FieldError("name")
	assert.True(t, ok)
	assert.Equal(t, "too short; invalid chars", msg)

	assert.True(t, s.HasFieldError("email"))
	assert.False(t, s.HasFieldError("password"))

	_, ok = s.FieldError("password")
	assert.False(t, ok)
}

func TestState_GeneralError(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()
	s.Set(respErr(`{"detail":"A user with this email already exists"}`))

	assert.True(t, s.IsGeneralError())
	assert.False(t, s.IsValidationError())
	assert.Equal(t, "A user with this email already exists", s.GeneralError())
	assert.Empty(t, s.FieldErrors())
}

func TestState_UnrecognizedError(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()
	s.Set(errors.New("dial tcp: connection refused"))

	assert.False(t, s.IsValidationError())
	assert.False(t, s.IsGeneralError())
	assert.Empty(t, s.GeneralError())
	assert.Empty(t, s.FieldErrors())
	assert.Error(t, s.Err())
}

func TestState_Clear(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()
	s.Set(respErr(`{"detail":[{"type":"x","loc":["body","name"],"msg":"m"}]}`))
	require.True(t, s.IsValidationError())

	s.Clear()
	assert.False(t, s.IsValidationError())
	assert.False(t, s.IsGeneralError())
	assert.Empty(t, s.GeneralError())
	assert.Empty(t, s.FieldErrors())
	assert.Nil(t, s.Err())

	// Idempotent under repeated calls.
	s.Clear()
	s.Clear()
	assert.Empty(t, s.FieldErrors())
}

func TestState_SetReplaces(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()
	s.Set(respErr(`{"detail":[{"type":"x","loc":["body","name"],"msg":"old"}]}`))
	require.True(t, s.HasFieldError("name"))

	// No merge with the previous error.
	s.Set(respErr(`{"detail":[{"type":"x","loc":["body","email"],"msg":"new"}]}`))
	assert.False(t, s.HasFieldError("name"))
	assert.True(t, s.HasFieldError("email"))

	// Replacing with a general error drops all field errors.
	s.Set(respErr(`{"detail":"nope"}`))
	assert.Empty(t, s.FieldErrors())
	assert.True(t, s.IsGeneralError())

	// Setting nil behaves like Clear.
	s.Set(nil)
	assert.False(t, s.IsGeneralError())
	assert.Nil(t, s.Err())
}

func TestState_MemoizedDerivation(t *testing.T) {
	t.Parallel()

	s := apierror.NewState()
	s.Set(respErr(`{"detail":[{"type":"x","loc":["body","name"],"msg":"m"}]}`))

	// Repeated reads return the same derived map instance.
	first := s.FieldErrors()
	second := s.FieldErrors()
	assert.Equal(t, first, second)
	assert.True(t, s.IsValidationError())
	assert.True(t, s.IsValidationError())
}
