package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCategoryNotFound = "CAT001"
)

// Errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryError custom error type
type CategoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func NewCategoryNotFoundError() *CategoryError {
	return &CategoryError{
		Code:    ErrCodeCategoryNotFound,
		Message: "Category not found",
		Err:     ErrCategoryNotFound,
	}
}
