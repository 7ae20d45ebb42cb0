package errors

import (
	"net/http"
	"testing"

	"syncfloww/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := errors.Wrap(ErrUnsupportedPlatform.WithDetails("myspace"), "connect")

	assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
	assert.False(t, errors.Is(err, ErrValidationFailed))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "myspace", appErr.Details())
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError(nil)
	assert.False(t, verr.HasErrors())

	verr.Add("password", "too short")
	verr.Add("password", "entirely numeric")
	verr.Add("email", "required")

	assert.True(t, verr.HasErrors())
	assert.True(t, errors.Is(verr, ErrValidationFailed))
	assert.Equal(t, "validation failed: email: required, password: too short; entirely numeric", verr.Error())
	assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to create project")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "database execution failed")
}
