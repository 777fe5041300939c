package storage

import "context"

//go:generate moq -out clearer_mock.go . Clearer

// Clearer wipes the synchronized state: entities, queue and checkpoints.
// Auth data is removed separately through AuthStorage.
type Clearer interface {
	// Clear drops all local sync state (logout purge)
	Clear(ctx context.Context) error
}
