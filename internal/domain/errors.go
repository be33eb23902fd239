package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrStorage      ErrorCode = "STORAGE_ERROR"

	// Quiz specific errors
	ErrDeckNotFound     ErrorCode = "DECK_NOT_FOUND"
	ErrQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	ErrNoActiveSession  ErrorCode = "NO_ACTIVE_SESSION"
	ErrImportFailure    ErrorCode = "IMPORT_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	domainErr, ok := err.(*DomainError)
	return ok && domainErr.Code == code
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(ErrStorage, message, err)
}

func NewDeckNotFoundError(deckID string) *DomainError {
	return NewError(ErrDeckNotFound, fmt.Sprintf("Deck not found with ID: %s", deckID), nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(ErrQuestionNotFound, fmt.Sprintf("Question not found with ID: %s", questionID), nil)
}

func NewNoActiveSessionError() *DomainError {
	return NewError(ErrNoActiveSession, "No quiz session is active", nil)
}

func NewImportError(message string) *DomainError {
	return NewError(ErrImportFailure, message, nil)
}
