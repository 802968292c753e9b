package errors

import "net/http"

var ErrInvalidPayload = &Exception{
	Kind:       KindValidation,
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}
