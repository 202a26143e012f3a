package books

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// Update godoc
// @Summary     Patch book
// @Description Частичное обновление: отсутствующие поля не трогаем.
// @Tags        books
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "book id"
// @Param       request body domain.BookPatch true "fields to update"
// @Success     200 {object} domain.APIEnvelope{response=domain.Book}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/books/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "books.update"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad book id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	var patch domain.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if patch.PageCount != nil && *patch.PageCount <= 0 {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	b, err := h.Books.UpdateBook(r.Context(), id, patch, time.Now().UTC())
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "book_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "book_id", b.ID)
	v1.WriteOKResponse(w, r, b)
}
