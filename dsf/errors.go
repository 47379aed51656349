package dsf

import "errors"

var (
	// ErrUnknownEntity indicates an element that was never registered with MakeSet.
	ErrUnknownEntity = errors.New("dsf: unknown element")

	// ErrDuplicateEntity indicates MakeSet was called for an already registered key.
	ErrDuplicateEntity = errors.New("dsf: element already registered")
)
