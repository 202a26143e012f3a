package auth

import (
	"log"
	"net/http"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

type HandlerMe struct {
	Log   *log.Logger
	Users domain.UsersRepo
}

// Me godoc
// @Summary     Current user
// @Description Возвращает профиль текущего пользователя (по access-токену).
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{response=domain.User}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/me [get]
func (h *HandlerMe) Me(w http.ResponseWriter, r *http.Request) {
	const op = "auth.me"
	reqID := mw.RequestIDFromCtx(r.Context())

	claims, ok := domain.ClaimsFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "no claims in context", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	u, err := h.Users.UserByID(r.Context(), claims.Subject.UserID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "user lookup failed", err, "user_id", claims.Subject.UserID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOKResponse(w, r, u)
}
