package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewNotFoundError("pool 7 not found"), ErrNotFound},
		{"validation", NewValidationError("amount must be positive"), ErrValidation},
		{"storage", NewStorageError("failed to insert transaction", cause), ErrStorage},
		{"duplicate", NewAppError(http.StatusConflict, "username taken", nil), ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}

	assert.ErrorIs(t, NewStorageError("failed", cause), cause)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "pool not found", NewNotFoundError("pool not found").Error())
	assert.Equal(t, "failed to insert: boom", NewStorageError("failed to insert", errors.New("boom")).Error())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusCode(nil))
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("%w: bad", ErrValidation)))
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFoundError("x")))
	assert.Equal(t, http.StatusConflict, StatusCode(ErrDuplicate))
	assert.Equal(t, http.StatusConflict, StatusCode(ErrConflict))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("unexpected")))

	// validation wins over the not-found it wraps
	err := fmt.Errorf("%w: source currency: %w", ErrValidation, ErrNotFound)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestDomainNotFoundSentinels(t *testing.T) {
	err := fmt.Errorf("%w: XYZ", ErrCurrencyNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrRateNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	assert.ErrorIs(t, ErrRateNotFound, ErrNotFound)
	assert.Equal(t, "currency not found: XYZ", err.Error())
}
