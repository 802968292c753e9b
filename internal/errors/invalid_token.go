package errors

import "net/http"

var ErrInvalidToken = &Exception{
	Kind:       KindAuthentication,
	Message:    "Invalid token",
	StatusCode: http.StatusUnauthorized,
}
