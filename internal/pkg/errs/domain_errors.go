package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Category markers. Every error leaving a use case carries exactly one of
// them (or none, for unexpected failures). Marks are only visible to Is below,
// not to the standard library's errors.Is.
var (
	ErrValidation          = errors.New("category: validation")
	ErrConflict            = errors.New("category: conflict")
	ErrConcurrencyConflict = errors.New("category: concurrency conflict")
	ErrIdempotencyConflict = errors.New("category: idempotency conflict")
	ErrNotFound            = errors.New("category: not found")
	ErrRetryable           = errors.New("category: retryable")
)

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

func Conflictf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrConflict)
}

func ConcurrencyConflictf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrConcurrencyConflict)
}

func IdempotencyConflictf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrIdempotencyConflict)
}

func NotFoundf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrNotFound)
}

// AsValidation keeps err's message and chain but classifies it as a validation failure.
func AsValidation(err error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, ErrValidation)
}

func AsConflict(err error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, ErrConflict)
}

func AsRetryable(err error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, ErrRetryable)
}

// Is reports whether err matches reference, including marks set by Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// Category returns the taxonomy name of err, or "INTERNAL".
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return "VALIDATION"
	case Is(err, ErrNotFound):
		return "NOT_FOUND"
	case Is(err, ErrConcurrencyConflict):
		return "CONCURRENCY_CONFLICT"
	case Is(err, ErrIdempotencyConflict):
		return "IDEMPOTENCY_CONFLICT"
	case Is(err, ErrConflict):
		return "CONFLICT"
	case Is(err, ErrRetryable):
		return "RETRYABLE"
	default:
		return "INTERNAL"
	}
}
