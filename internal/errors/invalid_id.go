package errors

import "net/http"

var ErrInvalidID = &Exception{
	Kind:       KindValidation,
	Message:    "id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
