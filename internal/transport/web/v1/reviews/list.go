package reviews

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// ListByBook godoc
// @Summary     List reviews for a book
// @Tags        reviews
// @Produce     json
// @Security    BearerAuth
// @Param       book_id path string true "book id"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Review}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/reviews/book/{book_id} [get]
func (h *Handler) ListByBook(w http.ResponseWriter, r *http.Request) {
	const op = "reviews.list_by_book"
	reqID := mw.RequestIDFromCtx(r.Context())

	bookID, err := uuid.Parse(r.PathValue("book_id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad book id", err, "raw", r.PathValue("book_id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if _, err := h.Books.BookByID(r.Context(), bookID); err != nil {
		logx.Error(h.Log, reqID, op, "book lookup failed", err, "book_id", bookID)
		v1.WriteDomainError(w, r, err)
		return
	}

	list, err := h.Reviews.ReviewsByBook(r.Context(), bookID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err, "book_id", bookID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "book_id", bookID, "count", len(list))
	v1.WriteOKData(w, r, list)
}
