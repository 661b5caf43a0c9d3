package shelf

import (
	"errors"
	"net/http"

	"bookshelf/internal/catalog"
	"bookshelf/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	svc    *Service
	guard  httpx.OwnershipGuard
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, guard httpx.OwnershipGuard, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, guard: guard, logger: logger}
}

type addBookReq struct {
	BookID string `json:"bookId" validate:"required"`
	Shelf  string `json:"shelf" validate:"required"`
}

type moveBookReq struct {
	BookID    string `json:"bookId" validate:"required"`
	FromShelf string `json:"fromShelf" validate:"required"`
	ToShelf   string `json:"toShelf" validate:"required"`
}

// GetShelves handles GET /api/users/{id}/bookshelves
// @Summary Get a user's shelves
// @Tags bookshelves
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} View
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/{id}/bookshelves [get]
func (h *HTTPHandler) GetShelves(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if !h.guard.Allow(w, r, userID) {
		return
	}

	view, err := h.svc.GetShelves(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, view)
}

// AddBook handles POST /api/users/{id}/add-book
// @Summary Put a book on a shelf
// @Tags bookshelves
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param request body addBookReq true "Book and shelf"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/{id}/add-book [post]
func (h *HTTPHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if !h.guard.Allow(w, r, userID) {
		return
	}

	var req addBookReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddToShelf(r.Context(), userID, req.BookID, req.Shelf); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Book added to shelf successfully")
}

// MoveBook handles PATCH /api/users/{id}/move-book
// @Summary Move a book between shelves
// @Tags bookshelves
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param request body moveBookReq true "Book and shelves"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/{id}/move-book [patch]
func (h *HTTPHandler) MoveBook(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if !h.guard.Allow(w, r, userID) {
		return
	}

	var req moveBookReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.MoveBook(r.Context(), userID, req.BookID, req.FromShelf, req.ToShelf); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Book moved successfully")
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
	case errors.Is(err, catalog.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrAlreadyInShelf):
		httpx.JSONError(w, r, http.StatusBadRequest, "ALREADY_IN_SHELF", "Already in this shelf", nil)
	case errors.Is(err, ErrInvalidShelf):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_SHELF", "Invalid shelf name", nil)
	default:
		httpx.InternalError(w, r, h.logger, err)
	}
}
