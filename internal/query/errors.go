package query

import "errors"

// Domain-specific errors for the query package.
var (
	ErrEmptyQuery      = errors.New("query text is empty")
	ErrSessionNotFound = errors.New("session not found")
)
