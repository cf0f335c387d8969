// Package error defines domain-specific errors for the hashing service.
package error

import "errors"

// Hashing domain errors.
var (
	// ErrEmptyPassword is returned when an empty plaintext is submitted.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordTooLong is returned when the plaintext exceeds the bcrypt
	// input limit of 72 bytes.
	ErrPasswordTooLong = errors.New("password exceeds maximum length")

	// ErrHashMismatch is returned when a plaintext does not match a hash.
	ErrHashMismatch = errors.New("password does not match hash")

	// ErrMalformedHash is returned when a stored hash cannot be parsed as a
	// bcrypt hash.
	ErrMalformedHash = errors.New("malformed password hash")
)

// HashingErrorCode defines error codes for hashing errors.
// Format: HASH-XXYYYY where XX is category and YYYY is specific error.
type HashingErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeEmptyPassword   HashingErrorCode = "HASH-010001"
	ErrCodePasswordTooLong HashingErrorCode = "HASH-010002"
	ErrCodeMissingFields   HashingErrorCode = "HASH-010003"

	// Verification errors (02XXXX)
	ErrCodeMalformedHash HashingErrorCode = "HASH-020001"

	// Limit errors (03XXXX)
	ErrCodeRateLimited HashingErrorCode = "HASH-030001"
)

// HashingError represents a hashing error with code and message.
type HashingError struct {
	Code    HashingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HashingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HashingError) Unwrap() error {
	return e.Err
}

// NewHashingError creates a new HashingError with the given code and message.
func NewHashingError(code HashingErrorCode, message string, err error) *HashingError {
	return &HashingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
