package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error so the HTTP layer can map it to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotAuthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindNotImplemented
)

// Error is the failure shape shared by every service. The message and details
// are safe to surface to clients; Data carries request context for logging.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Data    map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotAuthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, message string, details []string, data map[string]any) *Error {
	return &Error{Kind: kind, Message: message, Details: details, Data: data}
}

func Validation(message string, details []string, data map[string]any) *Error {
	if message == "" {
		message = "Validation error"
	}
	return newError(KindValidation, message, details, data)
}

func NotAuthenticated(message string, data map[string]any) *Error {
	if message == "" {
		message = "User not authenticated"
	}
	return newError(KindNotAuthenticated, message, nil, data)
}

func Forbidden(message string, data map[string]any) *Error {
	if message == "" {
		message = "User not authorized to perform this action"
	}
	return newError(KindForbidden, message, nil, data)
}

func NotFound(message string, data map[string]any) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return newError(KindNotFound, message, nil, data)
}

func Conflict(message string, data map[string]any) *Error {
	if message == "" {
		message = "Resource conflicted"
	}
	return newError(KindConflict, message, nil, data)
}

func NotImplemented(message string, data map[string]any) *Error {
	if message == "" {
		message = "Not implemented"
	}
	return newError(KindNotImplemented, message, nil, data)
}

func Internal(message string, data map[string]any) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return newError(KindInternal, message, nil, data)
}

// From coerces any error into an *Error. Unclassified errors become internal
// server errors so raw messages never reach a client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("", nil)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
