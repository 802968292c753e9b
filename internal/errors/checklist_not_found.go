package errors

import "net/http"

var ErrChecklistNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "checklist not found",
	StatusCode: http.StatusNotFound,
}
