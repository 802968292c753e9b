package errors

import "net/http"

var ErrSubtaskNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "subtask not found",
	StatusCode: http.StatusNotFound,
}
