package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Betting Business Logic (BET) ----

func ErrInsufficientFunds() *AppError {
	return New("BET_001", "Insufficient funds", http.StatusBadRequest)
}

func ErrBelowMinimumStake(minStake string) *AppError {
	return New("BET_002", fmt.Sprintf("Minimum stake is %s coins", minStake), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("BET_003", "Invalid amount", http.StatusBadRequest)
}

func ErrBetNotFound() *AppError {
	return New("BET_004", "Bet not found", http.StatusBadRequest)
}

func ErrBetAlreadySettled() *AppError {
	return New("BET_005", "Bet is already settled", http.StatusBadRequest)
}

func ErrCashoutNotAvailable() *AppError {
	return New("BET_006", "Cashout is not available for this bet", http.StatusBadRequest)
}

func ErrUnknownGame(game string) *AppError {
	return New("BET_007", fmt.Sprintf("Unknown game: %s", game), http.StatusBadRequest)
}

func ErrInvalidPick(pick string) *AppError {
	return New("BET_008", fmt.Sprintf("Invalid pick: %s", pick), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("BET_009", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("BET_010", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrStorageConflict(err error) *AppError {
	return Wrap("SYS_002", "Storage contention, please retry", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ---- External Feed (FEED) ----

func ErrFeedUnavailable(err error) *AppError {
	return Wrap("FEED_001", "Odds feed unavailable", http.StatusServiceUnavailable, err)
}
