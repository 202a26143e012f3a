package reviews

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete review
// @Description Удалить может автор отзыва или админ.
// @Tags        reviews
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "review id"
// @Success     200 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/reviews/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "reviews.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	claims, ok := domain.ClaimsFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad review id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	rv, err := h.Reviews.ReviewByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "lookup failed", err, "review_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	// только автор или админ
	if rv.UserID != claims.Subject.UserID && claims.Subject.Role != domain.RoleAdmin {
		logx.Error(h.Log, reqID, op, "not an owner", domain.ErrForbidden, "review_id", id)
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}

	if err := h.Reviews.DeleteReview(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "review_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "review_id", id)
	v1.WriteOKData(w, r, map[string]any{"deleted": id})
}
