package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for the users collection and the
// singleton session marker. The store owns the bytes; nothing else touches
// the collections directly.
type Repository interface {
	List(ctx context.Context) ([]UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*UserProfile, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserProfile, bool, error)
	Create(ctx context.Context, u *UserProfile) error
	Update(ctx context.Context, u *UserProfile) error

	// Session marker: a cached snapshot of the signed-in profile.
	LoadSession(ctx context.Context) (*UserProfile, bool, error)
	SaveSession(ctx context.Context, u *UserProfile) error
	ClearSession(ctx context.Context) error
}
