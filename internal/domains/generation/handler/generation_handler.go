package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/internal/domains/generation"
	"ariomuse-backend/internal/shared/response"
	"ariomuse-backend/pkg/logger"
)

type GenerationHandler struct {
	service generation.Service
}

func NewGenerationHandler(service generation.Service) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// Compose handles POST /generation/compose. The body is the settings
// value object; the result is not persisted here — the client saves it
// through the compositions API once the user accepts it.
func (h *GenerationHandler) Compose(c *gin.Context) {
	var settings model.CompositionSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := settings.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	res, err := h.service.Compose(c.Request.Context(), settings)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Idea handles GET /generation/idea. Always succeeds.
func (h *GenerationHandler) Idea(c *gin.Context) {
	idea := h.service.SuggestIdea(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"idea": idea})
}

// Presets handles GET /generation/presets.
func (h *GenerationHandler) Presets(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"presets":    generation.Presets(),
		"defaultAbc": generation.DefaultABC,
	})
}

// Options handles GET /generation/options: the derived enum projections.
func (h *GenerationHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, generation.Options())
}

func (h *GenerationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, generation.ErrMissingCredential):
		response.ErrorResponse(c, http.StatusServiceUnavailable, "MISSING_CREDENTIAL", "Music generation is not configured")
	case errors.Is(err, generation.ErrGenerationFailed):
		logger.Error("generation failed", err)
		response.ErrorResponse(c, http.StatusBadGateway, "GENERATION_FAILED", "Music generation failed, please try again")
	default:
		logger.Error("generation handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
