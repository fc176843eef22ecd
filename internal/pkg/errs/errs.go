package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches a sentinel to err so callers can match it with Is while
// the original cause stays intact for logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches ref. Marks attached via Mark are only
// visible to the cockroachdb matcher, not to stdlib errors.Is, so every
// sentinel check goes through here.
func Is(err error, ref error) bool {
	return cr.Is(err, ref)
}
