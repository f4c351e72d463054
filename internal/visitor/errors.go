package visitor

import "errors"

var (
	// ErrNotFound means no record exists with the requested id.
	ErrNotFound = errors.New("visitor not found")

	// ErrAlreadyCheckedOut means the record already has a checkout time.
	// The original timestamp is never overwritten.
	ErrAlreadyCheckedOut = errors.New("visitor already checked out")

	// ErrStoreUnavailable means the database could not be opened. Callers
	// degrade to an in-memory store rather than failing the process.
	ErrStoreUnavailable = errors.New("visitor store unavailable")

	// ErrWriteFailure wraps I/O errors from the durable medium.
	ErrWriteFailure = errors.New("visitor store write failed")
)
