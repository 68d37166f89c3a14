package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the auth and profile business-logic contract.
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error)
	SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error)
	SignOut(ctx context.Context) error

	// Session returns the cached snapshot of the signed-in user. It does
	// not re-validate against the users collection.
	Session() (*UserDTO, bool)

	// RestoreSession reads the persisted session marker; called once at
	// startup so a prior login survives a restart.
	RestoreSession(ctx context.Context) error

	GetProfile(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*UserDTO, error)
}
