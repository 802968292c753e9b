package errors

import "net/http"

var ErrReplyNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "reply not found",
	StatusCode: http.StatusNotFound,
}
