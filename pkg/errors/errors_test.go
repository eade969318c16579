package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorMessageIncludesInternal(t *testing.T) {
	base := New("TEST", "something broke", http.StatusBadGateway)
	wrapped := base.WithInternal(errors.New("dial timeout"))

	require.Equal(t, "something broke: dial timeout", wrapped.Error())
	require.Equal(t, "something broke", base.Error(), "original must stay untouched")
}

func TestFromErrorUnwrapsAppError(t *testing.T) {
	inner := NewNotFound("task")
	err := fmt.Errorf("service: %w", inner)

	appErr := FromError(err)
	require.Equal(t, inner.Code, appErr.Code)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	require.Equal(t, ErrInternalServer.Code, appErr.Code)
	require.EqualError(t, appErr.Internal, "boom")
}

func TestValidationAndConflictHelpers(t *testing.T) {
	v := NewValidation("title must be at most 255 characters")
	require.Equal(t, http.StatusUnprocessableEntity, v.StatusCode)

	c := NewConflict("Email already registered")
	require.Equal(t, http.StatusConflict, c.StatusCode)
	require.Equal(t, "Email already registered", c.Message)
}
