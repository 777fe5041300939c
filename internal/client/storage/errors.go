package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrEntityNotFound indicates that the entity was not found
	ErrEntityNotFound = errors.New("entity not found")

	// ErrOperationNotFound indicates that no operation is queued for the entity
	ErrOperationNotFound = errors.New("queue operation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
