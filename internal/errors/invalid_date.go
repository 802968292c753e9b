package errors

import "net/http"

var ErrInvalidDate = &Exception{
	Kind:       KindValidation,
	Message:    "Invalid date format, expected dd/mm/yyyy hh:mm AM/PM",
	StatusCode: http.StatusBadRequest,
}
