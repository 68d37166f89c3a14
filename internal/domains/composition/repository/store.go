package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/composition"
	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/internal/store"
)

// storeRepository keeps the whole compositions collection as one JSON array
// under a stable key, replaced wholesale on every write. Linear scans are
// fine at this scale; a networked backend can swap in behind the same
// interface without touching call sites.
type storeRepository struct {
	kv store.Store
	mu sync.Mutex
}

func NewStoreRepository(kv store.Store) composition.Repository {
	return &storeRepository{kv: kv}
}

func (r *storeRepository) List(ctx context.Context) ([]model.Composition, error) {
	var comps []model.Composition
	if _, err := store.LoadJSON(ctx, r.kv, store.KeyCompositions, &comps); err != nil {
		return nil, fmt.Errorf("load compositions: %w", err)
	}
	return comps, nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Composition, bool, error) {
	comps, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range comps {
		if comps[i].ID == id {
			return &comps[i], true, nil
		}
	}
	return nil, false, nil
}

func (r *storeRepository) Upsert(ctx context.Context, comp *model.Composition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comps, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range comps {
		if comps[i].ID == comp.ID {
			comps[i] = *comp
			replaced = true
			break
		}
	}
	if !replaced {
		comps = append(comps, *comp)
	}

	if err := store.SaveJSON(ctx, r.kv, store.KeyCompositions, comps); err != nil {
		return fmt.Errorf("save compositions: %w", err)
	}
	return nil
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comps, err := r.List(ctx)
	if err != nil {
		return err
	}

	filtered := comps[:0]
	for i := range comps {
		if comps[i].ID != id {
			filtered = append(filtered, comps[i])
		}
	}
	if len(filtered) == len(comps) {
		// Absent id: nothing to write.
		return nil
	}

	if err := store.SaveJSON(ctx, r.kv, store.KeyCompositions, filtered); err != nil {
		return fmt.Errorf("save compositions: %w", err)
	}
	return nil
}
