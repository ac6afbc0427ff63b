package services

import "errors"

// Sentinel error kinds shared by the domain services. Controllers map these
// to HTTP status codes and machine-readable error codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error pairs a sentinel kind with a caller-facing message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

// ValidationError reports a missing or malformed request field
func ValidationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NotFoundError reports a missing record or a record the caller may not act on
func NotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// InvalidStateError reports an operation that is not legal for the record's
// current status
func InvalidStateError(message string) error {
	return &Error{Kind: ErrInvalidState, Message: message}
}

// ConflictError reports a uniqueness violation
func ConflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// UnauthorizedError reports missing or invalid credentials
func UnauthorizedError(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}
