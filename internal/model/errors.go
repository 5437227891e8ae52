package model

// ValidationError marks input errors that should map to a 422 at the
// transport boundary, as opposed to internal failures which map to 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
