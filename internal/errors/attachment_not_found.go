package errors

import "net/http"

var ErrAttachmentNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "attachment not found",
	StatusCode: http.StatusNotFound,
}
