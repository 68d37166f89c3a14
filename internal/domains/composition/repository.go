package composition

import (
	"context"

	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/composition/model"
)

// Repository is the data-access contract for the compositions collection.
// FindByID reports absence without an error; translating absence into
// ErrNotFound is the service's job.
type Repository interface {
	List(ctx context.Context) ([]model.Composition, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Composition, bool, error)

	// Upsert replaces the record with a matching id or appends a new one.
	Upsert(ctx context.Context, comp *model.Composition) error

	// Delete removes the record; an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
