package repository

import "errors"

// Storage-level errors. Implementations log details and return these
// sentinels so use cases stay driver-agnostic.
var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
)
