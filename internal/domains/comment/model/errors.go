package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound   = "COM001"
	ErrCodeParentMismatch = "COM002"
	ErrCodeInvalidThread  = "COM003"
)

// Errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrParentMismatch  = errors.New("parent comment belongs to a different post")
	ErrInvalidThread   = errors.New("comment thread is not well-formed")
)

// CommentError custom error type
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func NewPostNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewParentMismatchError() *CommentError {
	return &CommentError{
		Code:    ErrCodeParentMismatch,
		Message: "Parent comment does not belong to the given post",
		Err:     ErrParentMismatch,
	}
}

func NewInvalidThreadError() *CommentError {
	return &CommentError{
		Code:    ErrCodeInvalidThread,
		Message: "Comment thread is not well-formed",
		Err:     ErrInvalidThread,
	}
}
