package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ariomuse-backend/internal/domains/composition"
	"ariomuse-backend/internal/domains/composition/model"
	"ariomuse-backend/internal/shared/middleware"
	"ariomuse-backend/internal/shared/response"
	"ariomuse-backend/internal/store"
	"ariomuse-backend/pkg/logger"
)

// CompositionHandler exposes a user's composition library over HTTP. The
// service layer does no ownership checks, so this layer is where the
// authenticated user id is matched against the record owner.
type CompositionHandler struct {
	service composition.Service
}

func NewCompositionHandler(service composition.Service) *CompositionHandler {
	return &CompositionHandler{service: service}
}

// List handles GET /compositions.
func (h *CompositionHandler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	comps, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comps)
}

// Create handles POST /compositions: persists a generated result.
func (h *CompositionHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req composition.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	comp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/compositions/"+comp.ID.String())
	response.Success(c, http.StatusCreated, comp)
}

// GetByID handles GET /compositions/:id.
func (h *CompositionHandler) GetByID(c *gin.Context) {
	comp, ok := h.ownedComposition(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, comp)
}

// Update handles PUT /compositions/:id.
func (h *CompositionHandler) Update(c *gin.Context) {
	comp, ok := h.ownedComposition(c)
	if !ok {
		return
	}

	var req composition.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), comp.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// AppendVersion handles POST /compositions/:id/versions.
func (h *CompositionHandler) AppendVersion(c *gin.Context) {
	comp, ok := h.ownedComposition(c)
	if !ok {
		return
	}

	var req composition.AppendVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	updated, err := h.service.AppendVersion(c.Request.Context(), comp.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// SetFavorite handles PATCH /compositions/:id/favorite.
func (h *CompositionHandler) SetFavorite(c *gin.Context) {
	comp, ok := h.ownedComposition(c)
	if !ok {
		return
	}

	var req composition.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.SetFavorite(c.Request.Context(), comp.ID, req.IsFavorite)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /compositions/:id. Deleting an id you own that is
// already gone is a 204 either way.
func (h *CompositionHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid composition id")
		return
	}

	comp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, composition.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		h.handleError(c, err)
		return
	}
	if comp.UserID != userID {
		response.Forbidden(c, "You do not own this composition")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedComposition parses :id, loads the record and enforces ownership.
// On failure it has already written the response.
func (h *CompositionHandler) ownedComposition(c *gin.Context) (*model.Composition, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid composition id")
		return nil, false
	}

	comp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	if comp.UserID != userID {
		response.Forbidden(c, "You do not own this composition")
		return nil, false
	}
	return comp, true
}

func (h *CompositionHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, composition.ErrNotFound):
		response.NotFound(c, "Composition not found")
	case errors.Is(err, composition.ErrInvalidComposition):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid composition", err.Error())
	case errors.Is(err, store.ErrCorrupt):
		logger.Error("compositions collection corrupt", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_CORRUPT", "Stored data is corrupt")
	default:
		logger.Error("composition handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
