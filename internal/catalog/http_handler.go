package catalog

import (
	"errors"
	"net/http"
	"strings"

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

type insertReq struct {
	Title    string `json:"title" validate:"required,notblank,max=500"`
	ImageURL string `json:"imageUrl" validate:"max=2048"`
	ISBN     string `json:"isbn" validate:"required,notblank,max=32"`
}

// Insert handles POST /api/library
// @Summary Add a book to the catalog
// @Tags library
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body insertReq true "Book"
// @Success 201 {object} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/library [post]
func (h *HTTPHandler) Insert(w http.ResponseWriter, r *http.Request) {
	var req insertReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	book, err := h.svc.InsertBook(r.Context(), strings.TrimSpace(req.Title), strings.TrimSpace(req.ImageURL), req.ISBN)
	if err != nil {
		if errors.Is(err, ErrDuplicateISBN) {
			httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Book already exists in library.", nil)
			return
		}
		httpx.InternalError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccessCreated(w, book)
}

// List handles GET /api/library
// @Summary List the catalog
// @Tags library
// @Produce json
// @Success 200 {array} Book
// @Router /api/library [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		httpx.InternalError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// Get handles GET /api/library/{bookId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.GetBook(r.Context(), r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.InternalError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, book)
}
