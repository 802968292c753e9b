package errors

import "net/http"

var ErrMessageNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "message not found",
	StatusCode: http.StatusNotFound,
}
