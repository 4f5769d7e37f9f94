package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrIndexOutOfRange is returned by positional mutations on nested
	// collections when an index misses. The target document is untouched.
	ErrIndexOutOfRange = errors.New("index out of range")
)
