package sdk

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed SDK operation.
type ErrorKind string

const (
	// KindValidation marks missing or malformed input, caught before any
	// network call is made.
	KindValidation ErrorKind = "validation"
	// KindAuthentication marks bad credentials or an invalid/expired token.
	KindAuthentication ErrorKind = "authentication"
	// KindAuthorization marks a role-insufficient operation.
	KindAuthorization ErrorKind = "authorization"
	// KindNetwork marks an unreachable backend.
	KindNetwork ErrorKind = "network"
	// KindServer marks a backend-reported failure.
	KindServer ErrorKind = "server"
)

// Error is the failure type returned by every session and API operation.
// The backend-provided message, when present, is carried verbatim so callers
// can surface it to the user.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil && e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf returns the kind of err, or the empty string when err is not an
// SDK error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool { return KindOf(err) == KindAuthentication }

// IsAuthorization reports whether err is an authorization failure.
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }

// IsNetwork reports whether err is a connectivity failure.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

// IsServer reports whether err is a backend-reported failure.
func IsServer(err error) bool { return KindOf(err) == KindServer }
