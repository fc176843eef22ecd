package gateway

import (
	"errors"
)

type ErrorKind string

// Gateway-specific error kinds
const (
	KindAuthMissing ErrorKind = "AUTH_MISSING"
	KindTransport   ErrorKind = "TRANSPORT"
	KindRemote      ErrorKind = "REMOTE"
)

// ErrorEnvelope is the structured error payload the remote service returns.
// Parsed once here so callers never re-derive it from raw responses.
type ErrorEnvelope struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Error struct {
	Kind     ErrorKind
	Status   int
	Envelope *ErrorEnvelope
	err      error // wrapped low-level error
}

func (e *Error) Error() string {
	if e.Envelope != nil && e.Envelope.Message != "" {
		return string(e.Kind) + ": " + e.Envelope.Message
	}
	if e.err != nil {
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.err
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Message extracts the human-readable message a page should surface:
// the server envelope when present, the transport error otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Envelope != nil && e.Envelope.Message != "" {
			return e.Envelope.Message
		}
		if e.err != nil {
			return e.err.Error()
		}
	}
	return err.Error()
}
