// File: internal/services/message/errors.go
package message

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeDuplicate  ErrorType = "DUPLICATE"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeStore      ErrorType = "STORE"
)

// MessageError carries enough structured detail (field name, conflicting id)
// for the HTTP layer to format a response without re-deriving context.
type MessageError struct {
	Type      ErrorType
	Operation string
	Field     string // set for validation errors
	MessageID string // set for duplicate errors
	Message   string
	Cause     error
}

func (e *MessageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("message %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("message %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *MessageError) Unwrap() error {
	return e.Cause
}

func NewValidationError(operation, field, msg string) *MessageError {
	return &MessageError{Type: ErrTypeValidation, Operation: operation, Field: field, Message: msg}
}

func NewDuplicateError(operation, messageID string) *MessageError {
	return &MessageError{
		Type:      ErrTypeDuplicate,
		Operation: operation,
		MessageID: messageID,
		Message:   fmt.Sprintf("message with ID '%s' already exists", messageID),
	}
}

func NewStoreError(operation, msg string, cause error) *MessageError {
	return &MessageError{Type: ErrTypeStore, Operation: operation, Message: msg, Cause: cause}
}

// AsMessageError unwraps err into a *MessageError if possible.
func AsMessageError(err error) (*MessageError, bool) {
	var me *MessageError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	me, ok := AsMessageError(err)
	return ok && me.Type == ErrTypeValidation
}

// IsDuplicate reports whether err is a duplicate message_id failure.
func IsDuplicate(err error) bool {
	me, ok := AsMessageError(err)
	return ok && me.Type == ErrTypeDuplicate
}
