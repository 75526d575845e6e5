// Package apperrors defines the tagged error taxonomy used between the
// service layer and the HTTP boundary. Services return these; handlers
// translate them to status codes and never inspect anything else.
package apperrors

// ValidationError reports malformed, missing, or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation returns a new ValidationError with the given message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError reports a missing resource. Malformed identifiers are
// deliberately conflated with missing resources so responses do not
// leak identifier-format details.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound returns a new NotFoundError with the given message.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// ConflictError reports a uniqueness violation, such as a duplicate
// email during signup.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflict returns a new ConflictError with the given message.
func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// AuthError reports a failed login. The message is generic on purpose:
// unknown email and wrong password must be indistinguishable.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Auth returns a new AuthError with the given message.
func Auth(message string) error {
	return &AuthError{Message: message}
}
