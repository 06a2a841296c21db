// Package errors provides error types and utilities for domainsearch.
// It extends the standard errors package with sentinel errors for probe
// outcomes and helpers to classify raw network errors into them.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrNotFound indicates a name could not be resolved
	ErrNotFound = errors.New("name not found")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTimeout indicates a non-positive probe timeout
	ErrInvalidTimeout = errors.New("timeout must be a positive duration")

	// ErrMissingInput indicates there is nothing to dispatch
	ErrMissingInput = errors.New("missing required input")

	// ErrConnectionFailed indicates a connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrCanceled indicates the run was canceled before the probe ran
	ErrCanceled = errors.New("canceled")

	// ErrProbePanic indicates a probe panicked and was recovered
	ErrProbePanic = errors.New("probe panicked")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// classified keeps the original network error reachable while adding a sentinel.
type classified struct {
	kind  error
	cause error
}

func (c *classified) Error() string   { return fmt.Sprintf("%v: %v", c.kind, c.cause) }
func (c *classified) Unwrap() []error { return []error{c.kind, c.cause} }

// Classify maps a raw resolver/dial error onto one of the sentinels
// (ErrNotFound, ErrTimeout, ErrCanceled, ErrConnectionFailed).
// The original error stays in the chain. Classify(nil) returns nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var kind error
	var dnsErr *net.DNSError
	var netErr net.Error

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTimeout),
		errors.Is(err, ErrCanceled), errors.Is(err, ErrConnectionFailed):
		return err
	case errors.Is(err, context.Canceled):
		kind = ErrCanceled
	case errors.Is(err, context.DeadlineExceeded):
		kind = ErrTimeout
	case errors.As(err, &dnsErr) && dnsErr.IsNotFound:
		kind = ErrNotFound
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = ErrTimeout
	case errors.As(err, &dnsErr):
		kind = ErrNotFound
	default:
		kind = ErrConnectionFailed
	}

	return &classified{kind: kind, cause: err}
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsConnectionFailed reports whether the error is a connection failed error
func IsConnectionFailed(err error) bool {
	return Is(err, ErrConnectionFailed)
}

// IsCanceled reports whether the error is a cancellation
func IsCanceled(err error) bool {
	return Is(err, ErrCanceled)
}

// IsProbePanic reports whether the error came from a recovered probe panic
func IsProbePanic(err error) bool {
	return Is(err, ErrProbePanic)
}
