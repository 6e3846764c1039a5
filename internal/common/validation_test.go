package common

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	v.Field("customer_name", "Ahmet", Required)
	v.Field("job_id", "b9c7c5e0-0000-0000-0000-000000000000", UUID)
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())

	v = NewValidator()
	v.Field("customer_name", "  ", Required)
	v.Field("customer_name", strings.Repeat("x", 300), func(f string, val interface{}) *ValidationError {
		return MaxLength(f, val, 250)
	})
	v.Field("job_id", "nope", UUID)
	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 3)
	assert.Contains(t, v.ErrorMessage(), "customer_name")
	assert.Contains(t, v.ErrorMessage(), "must be a valid UUID")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(WrapError(ErrNotFound, "contact")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrDatabase))
}

func TestAppError(t *testing.T) {
	err := NewAppError("DB_WRITE", "insert contact", ErrDatabase)
	assert.Contains(t, err.Error(), "DB_WRITE")
	assert.ErrorIs(t, err, ErrDatabase)
}
