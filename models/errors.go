package models

// ValidationError marks failures the caller can fix: duplicate usernames,
// unknown tag ids, malformed parent references. Handlers translate it to a
// 400 response. Not-found is never an error; services return a nil result
// for it instead.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
