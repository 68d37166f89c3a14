package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/internal/domains/generation/gemini"
	"ariomuse-backend/pkg/logger"
)

// Service translates composition settings into generative-service calls
// and validates what comes back.
type Service interface {
	// Compose returns a complete result or fails; it never returns
	// partial data. No retry policy: one attempt per call.
	Compose(ctx context.Context, settings model.CompositionSettings) (*Result, error)

	// SuggestIdea is best-effort: any failure degrades to a canned
	// suggestion instead of an error, because a missing idea prompt is
	// harmless while a silent bad composition is not.
	SuggestIdea(ctx context.Context) string
}

type service struct {
	client *gemini.Client
}

func NewService(client *gemini.Client) Service {
	return &service{client: client}
}

func (s *service) Compose(ctx context.Context, settings model.CompositionSettings) (*Result, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !s.client.Configured() {
		return nil, ErrMissingCredential
	}

	raw, err := s.client.GenerateJSON(ctx, BuildComposePrompt(settings), resultSchema())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrGenerationFailed, err)
	}

	if res.Title == "" || res.ABCNotation == "" || res.Commentary == "" {
		return nil, fmt.Errorf("%w: response is missing required fields", ErrGenerationFailed)
	}

	return &res, nil
}

func (s *service) SuggestIdea(ctx context.Context) string {
	if !s.client.Configured() {
		return fallbackIdeaNoCredential
	}

	text, err := s.client.GenerateText(ctx, ideaPrompt)
	if err != nil {
		if !errors.Is(err, gemini.ErrNoAPIKey) {
			logger.Warn("idea suggestion failed", map[string]interface{}{"error": err.Error()})
		}
		return fallbackIdeaError
	}
	if text == "" {
		return fallbackIdeaEmpty
	}
	return text
}
