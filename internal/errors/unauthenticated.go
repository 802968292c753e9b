package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Kind:       KindAuthentication,
	Message:    "A valid token is missing!",
	StatusCode: http.StatusUnauthorized,
}
