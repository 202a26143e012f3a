package books

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// ListByOwner godoc
// @Summary     List books of a user
// @Tags        books
// @Produce     json
// @Security    BearerAuth
// @Param       user_uid path string true "user id"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Book}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Router      /api/v1/books/user/{user_uid} [get]
func (h *Handler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	const op = "books.list_by_owner"
	reqID := mw.RequestIDFromCtx(r.Context())

	owner, err := uuid.Parse(r.PathValue("user_uid"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad user id", err, "raw", r.PathValue("user_uid"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	list, err := h.Books.BooksByOwner(r.Context(), owner)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err, "owner", owner)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "owner", owner, "count", len(list))
	v1.WriteOKData(w, r, list)
}
