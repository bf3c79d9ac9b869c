package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound   = "POST001"
	ErrCodeInvalidRequest = "POST002"
)

// Errors
var (
	ErrPostNotFound = errors.New("post not found")
)

// PostError custom error type
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func NewPostNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewInvalidRequestError(err error) *PostError {
	return &PostError{
		Code:    ErrCodeInvalidRequest,
		Message: "Invalid request",
		Err:     err,
	}
}
