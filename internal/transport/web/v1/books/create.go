package books

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

type createRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"published_date"` // YYYY-MM-DD
	PageCount     int    `json:"page_count"`
	Language      string `json:"language"`
}

// Create godoc
// @Summary     Create book
// @Tags        books
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body createRequest true "book fields"
// @Success     201 {object} domain.APIEnvelope{response=domain.Book}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Router      /api/v1/books [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "books.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	claims, ok := domain.ClaimsFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if req.Title == "" || req.Author == "" || req.PageCount <= 0 {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	published, err := time.Parse("2006-01-02", req.PublishedDate)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad published_date", err, "value", req.PublishedDate)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	b, err := h.Books.CreateBook(r.Context(), domain.Book{
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedDate: published,
		PageCount:     req.PageCount,
		Language:      req.Language,
		OwnerID:       claims.Subject.UserID,
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "book_id", b.ID)
	v1.WriteCreated(w, r, b)
}
