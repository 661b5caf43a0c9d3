package user

import (
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	guard   httpx.OwnershipGuard
	logger  *zap.Logger
}

func NewHTTPHandler(service *Service, guard httpx.OwnershipGuard, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, guard: guard, logger: logger}
}

type updateUsernameReq struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
}

// GetProfile handles GET /api/users/{id}
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} User
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/{id} [get]
func (h *HTTPHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetByUserID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, u)
}

// UpdateUsername handles PATCH /api/users/{userId}/username
// @Summary Change the display name
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param userId path string true "User ID"
// @Param request body updateUsernameReq true "New username"
// @Success 200 {object} User
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/{userId}/username [patch]
func (h *HTTPHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !h.guard.Allow(w, r, userID) {
		return
	}

	var req updateUsernameReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.service.UpdateUsername(r.Context(), userID, strings.TrimSpace(req.Username))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, u)
}

type updateProfilePicReq struct {
	ProfilePicURL string `json:"profilePicUrl" validate:"required,url,max=2048"`
}

// UpdateProfilePic handles PATCH /api/users/{id}/profile-pic
// @Summary Set the profile picture URL
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param request body updateProfilePicReq true "Picture URL"
// @Success 200 {object} User
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/{id}/profile-pic [patch]
func (h *HTTPHandler) UpdateProfilePic(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if !h.guard.Allow(w, r, userID) {
		return
	}

	var req updateProfilePicReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.service.UpdateProfilePic(r.Context(), userID, req.ProfilePicURL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, u)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		return
	}
	httpx.InternalError(w, r, h.logger, err)
}
