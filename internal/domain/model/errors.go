package model

// ValidationError marks input the caller can correct. Controllers answer 400
// for it; every other error from a use case is treated as a store failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
