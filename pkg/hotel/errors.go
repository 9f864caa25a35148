package hotel

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the booking ledger.
var (
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrPastDate             = errors.New("date is in the past")
	ErrRoomAlreadyBooked    = errors.New("room already booked for this date")
	ErrRoomNotFound         = errors.New("room not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrEmptyField           = errors.New("empty field")
	ErrInvalidRoomNumber    = errors.New("invalid room number")
	ErrInvalidRoomType      = errors.New("invalid room type")
	ErrInvalidStayDate      = errors.New("invalid stay date")
	ErrInvalidServiceConfig = errors.New("invalid service config")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
