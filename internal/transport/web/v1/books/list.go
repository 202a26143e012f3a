package books

import (
	"net/http"
	"strconv"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// List godoc
// @Summary     List books
// @Tags        books
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "limit (default 50, max 1000)"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.Book}
// @Failure     403 {object} domain.APIEnvelope
// @Router      /api/v1/books [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "books.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	list, err := h.Books.BooksList(r.Context(), limit)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(list))
	v1.WriteOKData(w, r, list)
}
