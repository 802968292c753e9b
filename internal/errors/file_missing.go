package errors

import "net/http"

var ErrFileMissing = &Exception{
	Kind:       KindValidation,
	Message:    "file is required",
	StatusCode: http.StatusBadRequest,
}
