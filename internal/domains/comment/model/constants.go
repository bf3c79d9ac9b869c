package model

const (
	// Pagination of top-level comments
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Content limits
	MaxContentLength = 2000
)
