package sieve

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes sieve construction errors.
type ErrorCode string

const (
	// ErrCodeInvalidLimit indicates a limit below 2 or above MaxLimit.
	ErrCodeInvalidLimit ErrorCode = "INVALID_LIMIT"
)

// LimitError is returned by New when the limit violates its precondition.
type LimitError struct {
	Code  ErrorCode
	Limit int
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	if e.Limit > MaxLimit {
		return fmt.Sprintf("%s: limit must be at most %d, got %d", e.Code, MaxLimit, e.Limit)
	}
	return fmt.Sprintf("%s: limit must be at least 2, got %d", e.Code, e.Limit)
}

// IsLimitError returns true if err is, or wraps, a *LimitError.
func IsLimitError(err error) bool {
	var le *LimitError
	return errors.As(err, &le)
}
