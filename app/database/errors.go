package database

import "errors"

// Sentinel errors returned by store operations. Handlers map these to
// HTTP status codes; the raw SQL error never leaves this package for
// business-rule failures.
var (
	ErrNotFound       = errors.New("record not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidInput   = errors.New("invalid input")
	ErrAlreadyDecided = errors.New("expense already decided")
)
