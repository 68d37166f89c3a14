package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ariomuse-backend/internal/domains/user"
	"ariomuse-backend/internal/shared/middleware"
	"ariomuse-backend/internal/shared/response"
	"ariomuse-backend/internal/store"
	"ariomuse-backend/pkg/logger"
)

// UserHandler maps HTTP requests onto the auth service. Stateless; holds
// only dependencies.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	res, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+res.User.ID.String())
	response.Success(c, http.StatusCreated, res)
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	res, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Logout handles POST /auth/logout. Idempotent.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.service.SignOut(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"signed_out": true})
}

// SessionInfo handles GET /auth/session: the cached snapshot, no
// re-validation against the users collection.
func (h *UserHandler) SessionInfo(c *gin.Context) {
	dto, ok := h.service.Session()
	if !ok {
		response.Success(c, http.StatusOK, gin.H{"session": nil})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": dto})
}

// GetProfile handles GET /users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// UpdateProfile handles PATCH /users/me with a partial patch body.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var patch user.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// handleError maps domain errors to HTTP responses.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrDuplicateUser):
		response.ErrorResponse(c, http.StatusConflict, "DUPLICATE_USER", "An account with this email already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.ErrorResponse(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, store.ErrCorrupt):
		logger.Error("users collection corrupt", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_CORRUPT", "Stored data is corrupt")
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
