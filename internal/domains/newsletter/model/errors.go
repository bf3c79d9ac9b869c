package model

import "errors"

// =====================================================
// ERROR CODES
// =====================================================

const (
	ErrCodeSubscriptionNotFound = "SUB001"
	ErrCodeDuplicateEmail       = "SUB002"
)

// =====================================================
// SENTINEL ERRORS
// =====================================================

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrDuplicateEmail       = errors.New("email already subscribed")
)
