package errors

import "net/http"

var ErrCommentNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "comment not found",
	StatusCode: http.StatusNotFound,
}
