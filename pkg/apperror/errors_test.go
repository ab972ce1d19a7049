package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("BET_001", "Insufficient funds", http.StatusBadRequest),
			expected: "[BET_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("BET_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestBettingErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "BET_001", 400},
		{"BelowMinimumStake", ErrBelowMinimumStake("10"), "BET_002", 400},
		{"InvalidAmount", ErrInvalidAmount(), "BET_003", 400},
		{"BetNotFound", ErrBetNotFound(), "BET_004", 400},
		{"BetAlreadySettled", ErrBetAlreadySettled(), "BET_005", 400},
		{"CashoutNotAvailable", ErrCashoutNotAvailable(), "BET_006", 400},
		{"UnknownGame", ErrUnknownGame("poker"), "BET_007", 400},
		{"InvalidPick", ErrInvalidPick("sideways"), "BET_008", 400},
		{"NotFound", ErrNotFound("User"), "BET_009", 404},
		{"Validation", Validation("bad request"), "BET_010", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestBelowMinimumStake_Message(t *testing.T) {
	err := ErrBelowMinimumStake("10")
	assert.Contains(t, err.Message, "10")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	conflictErr := ErrStorageConflict(inner)
	assert.Equal(t, "SYS_002", conflictErr.Code)
	assert.Equal(t, 503, conflictErr.HTTPStatus)
}

func TestFeedError(t *testing.T) {
	inner := fmt.Errorf("429 too many requests")
	err := ErrFeedUnavailable(inner)
	assert.Equal(t, "FEED_001", err.Code)
	assert.Equal(t, 503, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("User")
	assert.Contains(t, err.Message, "User")
	assert.Equal(t, "BET_009", err.Code)
}
