package auth

import (
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/httpx"
	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/user"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	logger  *zap.Logger
}

func NewHTTPHandler(service *Service, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

type SignupReq struct {
	UserID   string `json:"userid" validate:"required,notblank,max=64"`
	Username string `json:"username" validate:"required,notblank,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginReq struct {
	UserID   string `json:"userid" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup handles POST /api/auth/signup
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupReq true "Signup request"
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/auth/signup [post]
func (h *HTTPHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.service.Signup(r.Context(), strings.TrimSpace(req.UserID), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAlreadyExists):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "User already exists", nil)
		case errors.Is(err, crypto.ErrPasswordTooLong):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "password must be at most 72 bytes", nil)
		default:
			httpx.InternalError(w, r, h.logger, err)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusCreated, "User created successfully")
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Login request"
// @Success 200 {object} LoginResult
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), strings.TrimSpace(req.UserID), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		case errors.Is(err, ErrInvalidCredentials):
			httpx.JSONError(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", nil)
		default:
			httpx.InternalError(w, r, h.logger, err)
		}
		return
	}

	httpx.JSONSuccess(w, result)
}
