package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/user"
	"ariomuse-backend/internal/store"
)

// storeRepository keeps the whole users collection as one JSON array under
// a stable key. Reads are linear scans; writes replace the collection.
// A mutex serializes read-modify-write cycles within this process; across
// processes the semantics stay last-write-wins by design.
type storeRepository struct {
	kv store.Store
	mu sync.Mutex
}

func NewStoreRepository(kv store.Store) user.Repository {
	return &storeRepository{kv: kv}
}

func (r *storeRepository) List(ctx context.Context) ([]user.UserProfile, error) {
	var users []user.UserProfile
	if _, err := store.LoadJSON(ctx, r.kv, store.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (r *storeRepository) FindByEmail(ctx context.Context, email string) (*user.UserProfile, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) == email {
			return &users[i], true, nil
		}
	}
	return nil, false, nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.UserProfile, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], true, nil
		}
	}
	return nil, false, nil
}

func (r *storeRepository) Create(ctx context.Context, u *user.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *u)
	if err := store.SaveJSON(ctx, r.kv, store.KeyUsers, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (r *storeRepository) Update(ctx context.Context, u *user.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			if err := store.SaveJSON(ctx, r.kv, store.KeyUsers, users); err != nil {
				return fmt.Errorf("save users: %w", err)
			}
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (r *storeRepository) LoadSession(ctx context.Context) (*user.UserProfile, bool, error) {
	var u user.UserProfile
	found, err := store.LoadJSON(ctx, r.kv, store.KeySession, &u)
	if err != nil {
		return nil, false, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	return &u, true, nil
}

func (r *storeRepository) SaveSession(ctx context.Context, u *user.UserProfile) error {
	if err := store.SaveJSON(ctx, r.kv, store.KeySession, u); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *storeRepository) ClearSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, store.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
