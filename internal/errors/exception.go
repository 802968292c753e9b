package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindAuthentication Kind = "Authentication Error"
	KindValidation     Kind = "Validation Error"
	KindNotFound       Kind = "Not Found Error"
	KindAuthorization  Kind = "Authorization Error"
	KindConflict       Kind = "Conflict Error"
	KindStorage        Kind = "Storage Error"
	KindUnexpected     Kind = "Unexpected Error"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func (e *Exception) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

func Validation(message string) *Exception {
	return &Exception{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest}
}

func Forbidden(message string) *Exception {
	return &Exception{Kind: KindAuthorization, Message: message, StatusCode: http.StatusForbidden}
}

func NotFound(message string) *Exception {
	return &Exception{Kind: KindNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// Storage wraps a persistence failure. The cause is kept for logging and
// never rendered to clients.
func Storage(err error) *Exception {
	return &Exception{Kind: KindStorage, Message: "unable to complete the request", StatusCode: http.StatusInternalServerError, Err: err}
}

func Unexpected(err error) *Exception {
	return &Exception{Kind: KindUnexpected, Message: "unexpected error", StatusCode: http.StatusInternalServerError, Err: err}
}

// As returns the Exception in err's chain, if any.
func As(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func StatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindUnexpected
}
