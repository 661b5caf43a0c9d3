package discussion

import (
	"errors"
	"net/http"

	"bookshelf/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: logger}
}

type startReq struct {
	Title   string `json:"title" validate:"max=300"`
	Content string `json:"content" validate:"max=10000"`
	User    string `json:"user" validate:"max=100"`
}

type replyReq struct {
	Username string `json:"username" validate:"max=100"`
	Content  string `json:"content" validate:"max=10000"`
}

// Start handles POST /api/discussions
// @Summary Start a discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body startReq true "Discussion"
// @Success 201 {object} Discussion
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/discussions [post]
func (h *HTTPHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.svc.Start(r.Context(), req.Title, req.Content, req.User)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Title and content required", nil)
			return
		}
		httpx.InternalError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccessCreated(w, d)
}

// List handles GET /api/discussions
// @Summary List discussions, newest first
// @Tags discussions
// @Produce json
// @Success 200 {array} Discussion
// @Router /api/discussions [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		httpx.InternalError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, list)
}

// Reply handles POST /api/discussions/{id}/replies
// @Summary Reply to a discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Discussion ID"
// @Param request body replyReq true "Reply"
// @Success 201 {object} Discussion
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/discussions/{id}/replies [post]
func (h *HTTPHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req replyReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.svc.Reply(r.Context(), r.PathValue("id"), req.Username, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Discussion not found", nil)
		case errors.Is(err, ErrInvalidInput):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Content required", nil)
		default:
			httpx.InternalError(w, r, h.logger, err)
		}
		return
	}
	httpx.JSONSuccessCreated(w, d)
}
