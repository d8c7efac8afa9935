package ports

import (
	"context"

	"github.com/aretw0/bough/pkg/domain"
)

// TraceStore defines the interface for persisting traversal records.
// This keeps the storage layer (Redis, memory) decoupled from the engine
// and the HTTP surface.
type TraceStore interface {
	// Save persists the record under its ID, overwriting any previous
	// record with the same ID.
	Save(ctx context.Context, record *domain.TraceRecord) error

	// Load retrieves a record by ID.
	// Returns domain.ErrTraceNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.TraceRecord, error)

	// Delete removes a record by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored trace IDs in lexical order.
	List(ctx context.Context) ([]string, error)
}
