package domain

import "errors"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

var (
	// ErrIndexNotInitialized is returned when a search runs before any index was built or loaded.
	ErrIndexNotInitialized = errors.New("passage index is not initialized")
	// ErrIndexUnavailable is returned when the persisted index is missing or corrupt.
	ErrIndexUnavailable = errors.New("passage index is unavailable")
	// ErrEmbeddingFailure is returned when the embedding capability fails after retrying.
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrToolInvocation marks a failed tool capability call.
	ErrToolInvocation = errors.New("tool invocation failed")
	// ErrModelInvocation marks a failed call to the chat model.
	ErrModelInvocation = errors.New("model invocation failed")
	// ErrRecursionLimitExceeded is recorded when an orchestration run reaches its iteration limit.
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
)
