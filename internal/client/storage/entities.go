package storage

import (
	"context"

	"github.com/pawkit/pawkit/internal/models"
)

//go:generate moq -out entitystorage_mock.go . EntityStorage

// Filter narrows ListEntities results. Zero value matches every live
// entity of the requested type.
type Filter struct {
	// WorkspaceID limits results to one workspace when non-empty
	WorkspaceID string
	// ParentID limits results to children of one collection when non-empty
	ParentID string
	// IncludeDeleted keeps tombstones (Deleted or DeletedLocally) in results
	IncludeDeleted bool
}

// EntityStorage defines the per-entity-type table store on the client
type EntityStorage interface {
	// SaveEntity stores or overwrites an entity in its type table
	SaveEntity(ctx context.Context, entity *models.Entity) error

	// GetEntity retrieves an entity by type and id
	// Returns ErrEntityNotFound if it doesn't exist
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error)

	// ListEntities returns entities of one type matching the filter
	ListEntities(ctx context.Context, entityType models.EntityType, filter Filter) ([]*models.Entity, error)

	// PurgeEntity physically removes an entity (hard delete after tombstone sync)
	PurgeEntity(ctx context.Context, entityType models.EntityType, id string) error

	// HasEntities reports whether the workspace holds any entity of any type.
	// Used by delta sync to choose between full and push-only mode.
	HasEntities(ctx context.Context, workspaceID string) (bool, error)
}
