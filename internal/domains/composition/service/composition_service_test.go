package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ariomuse-backend/internal/domains/composition"
	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/internal/domains/composition/repository"
	"ariomuse-backend/internal/store"
)

func newTestService(t *testing.T) composition.Service {
	t.Helper()
	kv, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewCompositionService(repository.NewStoreRepository(kv))
}

func validSettings() model.CompositionSettings {
	return model.CompositionSettings{
		Prompt:        "a gentle lullaby",
		Instrument:    model.InstrumentPiano,
		Complexity:    model.ComplexityBeginner,
		Key:           model.KeyCMajor,
		TimeSignature: model.TimeFourFour,
		Tempo:         100,
		Mood:          model.MoodHappy,
	}
}

func createReq(title string) composition.CreateRequest {
	return composition.CreateRequest{
		Title:    title,
		Settings: validSettings(),
		Version:  composition.VersionInput{ABCNotation: "X:1\nT:Test\nK:C\nCDEF|", Commentary: "a first draft"},
	}
}

// aggregate builds a valid composition with an explicit updatedAt so tests
// can control sort order.
func aggregate(userID uuid.UUID, title string, updatedAt time.Time) *model.Composition {
	versionID := uuid.New()
	return &model.Composition{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            title,
		Settings:         validSettings(),
		CurrentVersionID: versionID,
		Versions: []model.CompositionVersion{{
			ID:          versionID,
			CreatedAt:   updatedAt,
			ABCNotation: "X:1\nK:C\nCDEF|",
		}},
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
		Tags:      []string{},
	}
}

func TestCreateBuildsAggregate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	comp, err := svc.Create(ctx, userID, createReq("Lullaby"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, comp.ID)
	assert.Equal(t, userID, comp.UserID)
	assert.Equal(t, "Lullaby", comp.Title)
	require.Len(t, comp.Versions, 1)
	assert.Equal(t, comp.Versions[0].ID, comp.CurrentVersionID)
	assert.Equal(t, "a first draft", comp.Versions[0].Commentary)
	assert.NotNil(t, comp.Tags)
	assert.False(t, comp.IsFavorite)

	stored, err := svc.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, comp.ID, stored.ID)
}

func TestSaveTwiceKeepsOneRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	comp := aggregate(uuid.New(), "First title", time.Now().UTC())
	require.NoError(t, svc.Save(ctx, comp))

	comp.Title = "Second title"
	require.NoError(t, svc.Save(ctx, comp))

	owned, err := svc.ListByUser(ctx, comp.UserID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Second title", owned[0].Title)
}

func TestListByUserFiltersAndSorts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	oldest := aggregate(owner, "Oldest", base)
	newest := aggregate(owner, "Newest", base.Add(2*time.Hour))
	middle := aggregate(owner, "Middle", base.Add(time.Hour))
	foreign := aggregate(other, "Not mine", base.Add(3*time.Hour))

	for _, c := range []*model.Composition{oldest, newest, middle, foreign} {
		require.NoError(t, svc.Save(ctx, c))
	}

	owned, err := svc.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, owned, 3)
	assert.Equal(t, "Newest", owned[0].Title)
	assert.Equal(t, "Middle", owned[1].Title)
	assert.Equal(t, "Oldest", owned[2].Title)
}

func TestGetByIDUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, composition.ErrNotFound)
}

func TestAppendVersionKeepsHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	comp, err := svc.Create(ctx, uuid.New(), createReq("Evolving piece"))
	require.NoError(t, err)
	firstVersionID := comp.CurrentVersionID

	newSettings := validSettings()
	newSettings.Tempo = 160
	newSettings.Mood = model.MoodEpic

	updated, err := svc.AppendVersion(ctx, comp.ID, composition.AppendVersionRequest{
		Settings: newSettings,
		Version:  composition.VersionInput{ABCNotation: "X:1\nK:C\nGABc|", Commentary: "faster take"},
	})
	require.NoError(t, err)

	require.Len(t, updated.Versions, 2)
	assert.Equal(t, firstVersionID, updated.Versions[0].ID)
	assert.Equal(t, updated.Versions[1].ID, updated.CurrentVersionID)
	assert.Equal(t, 160, updated.Settings.Tempo)
	assert.Equal(t, model.MoodEpic, updated.Settings.Mood)
	assert.True(t, updated.UpdatedAt.After(comp.CreatedAt) || updated.UpdatedAt.Equal(comp.CreatedAt))
}

func TestUpdateReplacesMutableFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	comp, err := svc.Create(ctx, uuid.New(), createReq("Working title"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, comp.ID, composition.UpdateRequest{
		Title:      "Final title",
		IsFavorite: true,
		Tags:       []string{"jazz", "late-night"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Final title", updated.Title)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, []string{"jazz", "late-night"}, updated.Tags)
	// Versions only change through AppendVersion.
	require.Len(t, updated.Versions, 1)
}

func TestSetFavorite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	comp, err := svc.Create(ctx, uuid.New(), createReq("Keeper"))
	require.NoError(t, err)

	updated, err := svc.SetFavorite(ctx, comp.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)

	updated, err = svc.SetFavorite(ctx, comp.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsFavorite)
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	comp, err := svc.Create(ctx, uuid.New(), createReq("Survivor"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, uuid.New()))

	owned, err := svc.ListByUser(ctx, comp.UserID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	require.NoError(t, svc.Delete(ctx, comp.ID))
	owned, err = svc.ListByUser(ctx, comp.UserID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestSaveRejectsInvalidAggregates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("tempo out of range", func(t *testing.T) {
		comp := aggregate(uuid.New(), "Too fast", time.Now().UTC())
		comp.Settings.Tempo = model.MaxTempo + 1
		err := svc.Save(ctx, comp)
		assert.ErrorIs(t, err, composition.ErrInvalidComposition)
	})

	t.Run("dangling current version", func(t *testing.T) {
		comp := aggregate(uuid.New(), "Broken pointer", time.Now().UTC())
		comp.CurrentVersionID = uuid.New()
		err := svc.Save(ctx, comp)
		assert.ErrorIs(t, err, composition.ErrInvalidComposition)
	})

	t.Run("no versions", func(t *testing.T) {
		comp := aggregate(uuid.New(), "Empty history", time.Now().UTC())
		comp.Versions = nil
		err := svc.Save(ctx, comp)
		assert.ErrorIs(t, err, composition.ErrInvalidComposition)
	})

	t.Run("unknown instrument", func(t *testing.T) {
		comp := aggregate(uuid.New(), "Strange band", time.Now().UTC())
		comp.Settings.Instrument = model.Instrument("Theremin")
		err := svc.Save(ctx, comp)
		assert.ErrorIs(t, err, composition.ErrInvalidComposition)
	})
}
