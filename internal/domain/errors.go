package domain

import "errors"

// ErrNotFound is returned by repo and service functions when no record
// matches the requested name. An empty name is treated the same way,
// never as a distinct validation error.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrIndexRange is returned by positional updates when the index does not
// address an existing record. Unlike by-name operations, positional access
// has no soft "not found" fallback, so this is a hard failure.
var ErrIndexRange = errors.New("index out of range")
