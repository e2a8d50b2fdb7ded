// Package error defines domain-specific errors for the DebtNet application.
package error

import "errors"

// Reminder domain errors.
var (
	// ErrReminderScheduleFailed is returned when an event could not be stored.
	ErrReminderScheduleFailed = errors.New("failed to schedule reminder event")

	// ErrReminderCancelFailed is returned when an event could not be removed.
	ErrReminderCancelFailed = errors.New("failed to cancel reminder event")

	// ErrReminderDeliveryFailed is returned when a due reminder could not be delivered.
	ErrReminderDeliveryFailed = errors.New("failed to deliver reminder")
)

// ReminderErrorCode defines error codes for reminder errors.
// Format: RMD-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	ErrCodeReminderScheduleFailed ReminderErrorCode = "RMD-010001"
	ErrCodeReminderCancelFailed   ReminderErrorCode = "RMD-010002"
	ErrCodeReminderDeliveryFailed ReminderErrorCode = "RMD-010003"
)

// ReminderError represents a reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
