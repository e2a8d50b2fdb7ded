// Package error defines domain-specific errors for the DebtNet application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrEmptyDebtorName is returned when the debtor name is empty.
	ErrEmptyDebtorName = errors.New("debtor name must not be empty")

	// ErrInvalidAmount is returned when the debt amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidInterestRate is returned when the interest rate is negative.
	ErrInvalidInterestRate = errors.New("interest rate must not be negative")

	// ErrInvalidDebtCategory is returned when the category is not a known one.
	ErrInvalidDebtCategory = errors.New("invalid debt category")

	// ErrInvalidDebtType is returned when the debt type is not a known one.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidPaymentAmount is returned when a payment amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

	// ErrPaymentExceedsBalance is returned when a payment is larger than the remaining balance.
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds remaining balance")

	// ErrUnauthorizedDebtAccess is returned when the debt belongs to another user.
	ErrUnauthorizedDebtAccess = errors.New("unauthorized access to debt")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDebtNotFound           DebtErrorCode = "DBT-010001"
	ErrCodeEmptyDebtorName        DebtErrorCode = "DBT-010002"
	ErrCodeInvalidAmount          DebtErrorCode = "DBT-010003"
	ErrCodeInvalidInterestRate    DebtErrorCode = "DBT-010004"
	ErrCodeInvalidDebtCategory    DebtErrorCode = "DBT-010005"
	ErrCodeInvalidDebtType        DebtErrorCode = "DBT-010006"
	ErrCodeInvalidPaymentAmount   DebtErrorCode = "DBT-010007"
	ErrCodePaymentExceedsBalance  DebtErrorCode = "DBT-010008"
	ErrCodeUnauthorizedDebtAccess DebtErrorCode = "DBT-010009"
	ErrCodeMissingDebtFields      DebtErrorCode = "DBT-010010"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
