package grid

import "errors"

var (
	// ErrInvalidArgument indicates a malformed reference passed to a query,
	// or a connection whose endpoints are the same cell.
	ErrInvalidArgument = errors.New("grid: invalid argument")

	// ErrUnknownEntity indicates an operation referenced a cell that was never added.
	ErrUnknownEntity = errors.New("grid: unknown entity")

	// ErrDuplicateEntity indicates a cell or connection is already present.
	ErrDuplicateEntity = errors.New("grid: duplicate entity")

	// ErrNotFound indicates a lookup of a cell that does not exist.
	ErrNotFound = errors.New("grid: not found")
)
