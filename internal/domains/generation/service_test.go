package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ariomuse-backend/internal/config"
	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/internal/domains/generation/gemini"
)

// fakeUpstream serves the generateContent wire shape with the given part
// text, so the client exercises its real request and parse paths.
func fakeUpstream(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.NotEmpty(t, r.Header.Get("x-goog-api-key"))

		w.WriteHeader(status)
		if status < 200 || status > 299 {
			w.Write([]byte(`{"error":{"message":"upstream unavailable"}}`))
			return
		}
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestService(t *testing.T, upstream *httptest.Server, apiKey string) Service {
	t.Helper()
	cfg := config.GeminiConfig{
		APIKey:  apiKey,
		Model:   "gemini-2.5-flash",
		BaseURL: upstream.URL,
	}
	return NewService(gemini.NewClientWithHTTP(cfg, upstream.Client()))
}

func testSettings() model.CompositionSettings {
	return model.CompositionSettings{
		Prompt:        "rain on a window",
		Instrument:    model.InstrumentViolin,
		Complexity:    model.ComplexityAdvanced,
		Key:           model.KeyDMinor,
		TimeSignature: model.TimeThreeFour,
		Tempo:         90,
		Mood:          model.MoodSad,
	}
}

func TestComposeSuccess(t *testing.T) {
	payload, err := json.Marshal(Result{
		Title:       "Rain Study",
		ABCNotation: "X:1\nT:Rain Study\nK:Dm\nDEFG|",
		Commentary:  "A somber waltz built on a descending line.",
	})
	require.NoError(t, err)

	srv := fakeUpstream(t, http.StatusOK, string(payload))
	defer srv.Close()

	res, err := newTestService(t, srv, "test-key").Compose(context.Background(), testSettings())
	require.NoError(t, err)
	assert.Equal(t, "Rain Study", res.Title)
	assert.Contains(t, res.ABCNotation, "K:Dm")
	assert.NotEmpty(t, res.Commentary)
}

func TestComposeMissingCredential(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "{}")
	defer srv.Close()

	_, err := newTestService(t, srv, "").Compose(context.Background(), testSettings())
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestComposeRejectsInvalidSettings(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "{}")
	defer srv.Close()

	settings := testSettings()
	settings.Tempo = 0

	_, err := newTestService(t, srv, "test-key").Compose(context.Background(), settings)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrGenerationFailed)
}

func TestComposeUpstreamError(t *testing.T) {
	srv := fakeUpstream(t, http.StatusInternalServerError, "")
	defer srv.Close()

	_, err := newTestService(t, srv, "test-key").Compose(context.Background(), testSettings())
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestComposeRejectsIncompleteResult(t *testing.T) {
	// Valid JSON but no commentary.
	srv := fakeUpstream(t, http.StatusOK, `{"title":"Untitled","abc":"X:1\nK:C\nCDEF|"}`)
	defer srv.Close()

	_, err := newTestService(t, srv, "test-key").Compose(context.Background(), testSettings())
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestComposeRejectsNonJSONResult(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "here is your tune: CDEF")
	defer srv.Close()

	_, err := newTestService(t, srv, "test-key").Compose(context.Background(), testSettings())
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestSuggestIdeaSuccess(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "A minimalist piano loop that slowly gains a countermelody.")
	defer srv.Close()

	idea := newTestService(t, srv, "test-key").SuggestIdea(context.Background())
	assert.Equal(t, "A minimalist piano loop that slowly gains a countermelody.", idea)
}

func TestSuggestIdeaFallbacks(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		srv := fakeUpstream(t, http.StatusOK, "unused")
		defer srv.Close()

		idea := newTestService(t, srv, "").SuggestIdea(context.Background())
		assert.Equal(t, "A mysterious melody in the fog...", idea)
	})

	t.Run("upstream error", func(t *testing.T) {
		srv := fakeUpstream(t, http.StatusServiceUnavailable, "")
		defer srv.Close()

		idea := newTestService(t, srv, "test-key").SuggestIdea(context.Background())
		assert.Equal(t, "A fast violin run in a minor key.", idea)
	})
}

func TestBuildComposePromptRendersSettings(t *testing.T) {
	prompt := BuildComposePrompt(testSettings())

	assert.Contains(t, prompt, "Instrument: Violin")
	assert.Contains(t, prompt, "Key: D Minor")
	assert.Contains(t, prompt, "Time Signature: 3/4")
	assert.Contains(t, prompt, "Tempo: 90 BPM")
	assert.Contains(t, prompt, "Complexity: Advanced")
	assert.Contains(t, prompt, "Mood: Sad")
	assert.Contains(t, prompt, `"rain on a window"`)
}

func TestBuildComposePromptPolyphonyRule(t *testing.T) {
	mono := testSettings()
	mono.Instrument = model.InstrumentFlute
	assert.Contains(t, BuildComposePrompt(mono), "Flute is monophonic")

	poly := testSettings()
	poly.Instrument = model.InstrumentPiano
	assert.Contains(t, BuildComposePrompt(poly), "Piano is polyphonic")
	assert.True(t, strings.Contains(BuildComposePrompt(poly), "[CEG]"))
}

func TestResultSchemaRequiresAllFields(t *testing.T) {
	schema := resultSchema()
	assert.ElementsMatch(t, []string{"abc", "commentary", "title"}, schema["required"])
}
