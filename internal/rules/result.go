package rules

import apperrors "digiwork-hub.com/digiwork-hub/internal/errors"

type Verdict int

const (
	Accepted Verdict = iota
	// Rejected marks input that breaks a business rule.
	Rejected
	// Denied marks an actor that may not perform the operation.
	Denied
)

type Result struct {
	Verdict Verdict
	Message string
}

func accept() Result {
	return Result{Verdict: Accepted, Message: "Success"}
}

func reject(message string) Result {
	return Result{Verdict: Rejected, Message: message}
}

func deny(message string) Result {
	return Result{Verdict: Denied, Message: message}
}

func (r Result) OK() bool {
	return r.Verdict == Accepted
}

// Err converts r into the error taxonomy. Accepted results return nil.
func (r Result) Err() error {
	switch r.Verdict {
	case Accepted:
		return nil
	case Denied:
		return apperrors.Forbidden(r.Message)
	default:
		return apperrors.Validation(r.Message)
	}
}
