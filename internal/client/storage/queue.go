package storage

import (
	"context"

	"github.com/pawkit/pawkit/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the durable outbound operation queue.
// The store keys operations by (entityType, entityId), which enforces the
// at-most-one-operation-per-entity invariant structurally.
type QueueStorage interface {
	// SaveOperation stores or overwrites the operation for its entity
	SaveOperation(ctx context.Context, op *models.Operation) error

	// GetOperation retrieves the operation queued for an entity
	// Returns ErrOperationNotFound if none is queued
	GetOperation(ctx context.Context, entityType models.EntityType, entityID string) (*models.Operation, error)

	// DeleteOperation removes the operation queued for an entity
	DeleteOperation(ctx context.Context, entityType models.EntityType, entityID string) error

	// ListOperations returns every queued operation in storage order.
	// Callers sort by CreatedAt for FIFO dispatch.
	ListOperations(ctx context.Context) ([]*models.Operation, error)
}
