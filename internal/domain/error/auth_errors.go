// Package error defines domain-specific errors for the DebtNet application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrWeakPassword is returned when the password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken is returned when a JWT token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUT-010002"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010003"
	ErrCodeMissingAuthFields  AuthErrorCode = "AUT-010004"
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010005"
	ErrCodeInvalidEmail       AuthErrorCode = "AUT-010006"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-020002"

	// Rate limiting (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
