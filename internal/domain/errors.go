package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalid indicates the caller supplied missing or out-of-range input.
	ErrInvalid = errors.New("invalid input")
	// ErrConflict indicates the entity is in a state that forbids the operation.
	ErrConflict = errors.New("conflict")
)
