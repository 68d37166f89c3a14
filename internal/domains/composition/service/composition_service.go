package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/composition"
	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/pkg/logger"
)

type compositionService struct {
	repo composition.Repository
}

func NewCompositionService(repo composition.Repository) composition.Service {
	return &compositionService{repo: repo}
}

// ListByUser filters by owner and sorts by updatedAt descending. Ties keep
// insertion order.
func (s *compositionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Composition, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]model.Composition, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			owned = append(owned, c)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
	})
	return owned, nil
}

func (s *compositionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Composition, error) {
	comp, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, composition.ErrNotFound
	}
	return comp, nil
}

func (s *compositionService) Create(ctx context.Context, userID uuid.UUID, req composition.CreateRequest) (*model.Composition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	version := model.CompositionVersion{
		ID:          uuid.New(),
		CreatedAt:   now,
		ABCNotation: req.Version.ABCNotation,
		Commentary:  req.Version.Commentary,
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	comp := &model.Composition{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            req.Title,
		Settings:         req.Settings,
		CurrentVersionID: version.ID,
		Versions:         []model.CompositionVersion{version},
		CreatedAt:        now,
		UpdatedAt:        now,
		Tags:             tags,
	}

	if err := s.Save(ctx, comp); err != nil {
		return nil, err
	}

	logger.Info("composition created", map[string]interface{}{
		"composition_id": comp.ID,
		"user_id":        userID,
	})
	return comp, nil
}

// Save validates the aggregate invariants and upserts. A composition is
// never persisted without a resolvable current version.
func (s *compositionService) Save(ctx context.Context, comp *model.Composition) error {
	if err := comp.Validate(); err != nil {
		return fmt.Errorf("%w: %v", composition.ErrInvalidComposition, err)
	}
	if err := s.repo.Upsert(ctx, comp); err != nil {
		return fmt.Errorf("upsert composition: %w", err)
	}
	return nil
}

func (s *compositionService) Update(ctx context.Context, id uuid.UUID, req composition.UpdateRequest) (*model.Composition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comp.Title = req.Title
	comp.IsFavorite = req.IsFavorite
	if req.Tags != nil {
		comp.Tags = req.Tags
	}
	comp.UpdatedAt = time.Now().UTC()

	if err := s.Save(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

// AppendVersion records a regeneration: the history stays, the new version
// becomes current, and the settings that produced it replace the stored
// ones.
func (s *compositionService) AppendVersion(ctx context.Context, id uuid.UUID, req composition.AppendVersionRequest) (*model.Composition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	version := model.CompositionVersion{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		ABCNotation: req.Version.ABCNotation,
		Commentary:  req.Version.Commentary,
	}

	comp.Versions = append(comp.Versions, version)
	comp.CurrentVersionID = version.ID
	comp.Settings = req.Settings
	comp.UpdatedAt = version.CreatedAt

	if err := s.Save(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *compositionService) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Composition, error) {
	comp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comp.IsFavorite = favorite
	comp.UpdatedAt = time.Now().UTC()

	if err := s.Save(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *compositionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete composition: %w", err)
	}
	return nil
}
