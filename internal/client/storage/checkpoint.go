package storage

import (
	"context"

	"github.com/pawkit/pawkit/internal/models"
)

//go:generate moq -out checkpointstorage_mock.go . CheckpointStorage

// CheckpointStorage defines the key-value metadata table holding
// per-entity-type sync cursors
type CheckpointStorage interface {
	// SaveCheckpoint stores the pull cursor for an entity type
	// (the max server UpdatedAt observed, Unix milliseconds)
	SaveCheckpoint(ctx context.Context, entityType models.EntityType, timestamp int64) error

	// GetCheckpoint retrieves the pull cursor for an entity type
	// Returns 0 if the type has never been pulled
	GetCheckpoint(ctx context.Context, entityType models.EntityType) (int64, error)

	// ClearCheckpoints drops every cursor, forcing the next sync to pull
	// everything from scratch
	ClearCheckpoints(ctx context.Context) error
}
