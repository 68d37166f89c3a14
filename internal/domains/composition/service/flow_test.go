package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ariomuse-backend/internal/config"
	"ariomuse-backend/internal/domains/composition"
	"ariomuse-backend/internal/domains/composition/model"
	comprepo "ariomuse-backend/internal/domains/composition/repository"
	"ariomuse-backend/internal/domains/generation"
	"ariomuse-backend/internal/domains/generation/gemini"
	"ariomuse-backend/internal/domains/user"
	userrepo "ariomuse-backend/internal/domains/user/repository"
	userservice "ariomuse-backend/internal/domains/user/service"
	"ariomuse-backend/internal/store"
	"ariomuse-backend/pkg/jwt"
)

// TestFirstCompositionFlow walks the whole happy path a new user takes:
// sign up, finish onboarding, generate a piece, save it, find it in the
// library. All three services share one file store, like in production.
func TestFirstCompositionFlow(t *testing.T) {
	ctx := context.Background()

	kv, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	userSvc := userservice.NewAuthService(userrepo.NewStoreRepository(kv), jwt.NewManager("test-secret", 60, 72))
	compSvc := NewCompositionService(comprepo.NewStoreRepository(kv))

	generated, err := json.Marshal(generation.Result{
		Title:       "Sunny Day Tune",
		ABCNotation: "X:1\nT:Sunny Day Tune\nM:4/4\nK:C\nCDEF GABc|",
		Commentary:  "A bright melody over a I-IV-V progression.",
	})
	require.NoError(t, err)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": string(generated)}},
				}},
			},
		})
	}))
	defer upstream.Close()

	genSvc := generation.NewService(gemini.NewClientWithHTTP(config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: upstream.URL,
	}, upstream.Client()))

	// Sign up.
	auth, err := userSvc.SignUp(ctx, user.SignUpRequest{Email: "a@x.com", Password: "correct-horse-1"})
	require.NoError(t, err)
	userID := auth.User.ID

	// Finish onboarding.
	piano := model.InstrumentPiano
	level := model.ComplexityIntermediate
	done := true
	profile, err := userSvc.UpdateProfile(ctx, userID, user.ProfilePatch{
		PrimaryInstrument:   &piano,
		ExperienceLevel:     &level,
		OnboardingCompleted: &done,
	})
	require.NoError(t, err)
	require.True(t, profile.OnboardingCompleted)

	// Generate.
	settings := model.CompositionSettings{
		Prompt:        "a happy tune on a sunny day",
		Instrument:    piano,
		Complexity:    level,
		Key:           model.KeyCMajor,
		TimeSignature: model.TimeFourFour,
		Tempo:         100,
		Mood:          model.MoodHappy,
	}
	result, err := genSvc.Compose(ctx, settings)
	require.NoError(t, err)

	// Save.
	comp, err := compSvc.Create(ctx, userID, composition.CreateRequest{
		Title:    result.Title,
		Settings: settings,
		Version:  composition.VersionInput{ABCNotation: result.ABCNotation, Commentary: result.Commentary},
	})
	require.NoError(t, err)

	// The library shows exactly this piece.
	owned, err := compSvc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, comp.ID, owned[0].ID)
	assert.Equal(t, "Sunny Day Tune", owned[0].Title)
	assert.Equal(t, 100, owned[0].Settings.Tempo)
	assert.Equal(t, model.MoodHappy, owned[0].Settings.Mood)
	require.Len(t, owned[0].Versions, 1)
	assert.Equal(t, owned[0].Versions[0].ID, owned[0].CurrentVersionID)
	assert.Contains(t, owned[0].Versions[0].ABCNotation, "K:C")
}
