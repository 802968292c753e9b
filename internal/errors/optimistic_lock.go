package errors

import "net/http"

var ErrOptimisticLock = &Exception{
	Kind:       KindConflict,
	Message:    "the entity was modified concurrently, reload and retry",
	StatusCode: http.StatusConflict,
}
