// Package common provides shared utilities and types used across the engine.
package common

import (
	"errors"
	"fmt"
)

// Engine errors. The unsupported-variant errors are deliberately fatal:
// silently skipping a filter the engine does not recognize would widen
// results, which is unsafe for financial queries.
var (
	// ErrInvalidQuery indicates a query with no data sources or no operations.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnsupportedFilter indicates a filter variant this engine version does not know.
	ErrUnsupportedFilter = errors.New("unsupported filter")
	// ErrUnsupportedOperation indicates an operation variant this engine version does not know.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrSourceFetchFailed indicates a per-source fetch failure; it degrades
	// that source's contribution rather than aborting the query.
	ErrSourceFetchFailed = errors.New("source fetch failed")

	// ErrInvalidConfig indicates a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsFatalQueryError reports whether an executor error means the query
// itself is bad and must not be retried unchanged.
func IsFatalQueryError(err error) bool {
	return errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrUnsupportedFilter) ||
		errors.Is(err, ErrUnsupportedOperation)
}
