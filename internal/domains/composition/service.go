package composition

import (
	"context"

	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/composition/model"
)

// Service is the business-logic contract for a user's composition library.
// Every operation takes an explicit user or composition id; ownership
// enforcement on reads is the caller's responsibility.
type Service interface {
	// ListByUser returns the user's compositions, most recently updated
	// first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Composition, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Composition, error)

	// Create persists a generated result as a new composition whose first
	// version becomes current.
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*model.Composition, error)

	// Save upserts a full aggregate after validating its invariants.
	Save(ctx context.Context, comp *model.Composition) error

	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*model.Composition, error)
	AppendVersion(ctx context.Context, id uuid.UUID, req AppendVersionRequest) (*model.Composition, error)
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Composition, error)

	// Delete hard-deletes; an absent id is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
