package books

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete book
// @Tags        books
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "book id"
// @Success     200 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/books/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "books.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad book id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if err := h.Books.DeleteBook(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "book_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "book_id", id)
	v1.WriteOKData(w, r, map[string]any{"deleted": id})
}
