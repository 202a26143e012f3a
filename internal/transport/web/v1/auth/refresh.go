package auth

import (
	"log"
	"net/http"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/config"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// HandlerRefresh выпускает новый access-токен по refresh-токену.
// Маршрут стоит за refresh-шлюзом: сюда попадают только валидные refresh-клеймы.
type HandlerRefresh struct {
	Log    *log.Logger
	Cfg    *config.Config
	Users  domain.UsersRepo
	Tokens domain.TokenManager
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Refresh godoc
// @Summary     Refresh access token
// @Description Выпускает новый access-токен. Требуется refresh-токен в Authorization.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{response=refreshResponse}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/refresh_token [get]
func (h *HandlerRefresh) Refresh(w http.ResponseWriter, r *http.Request) {
	const op = "auth.refresh"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	claims, ok := domain.ClaimsFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "no claims in context", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	// перечитываем пользователя: роль могла измениться после выпуска refresh
	u, err := h.Users.UserByEmail(r.Context(), claims.Subject.Email)
	if err != nil {
		logx.Error(h.Log, reqID, op, "user lookup failed", err, "email", claims.Subject.Email)
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}

	sub := domain.TokenSubject{UserID: u.ID, Email: u.Email, Role: u.Role}
	access, _, err := h.Tokens.Issue(r.Context(), sub, false, h.Cfg.AuthAccessTTL)
	if err != nil {
		logx.Error(h.Log, reqID, op, "issue access token failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOKResponse(w, r, refreshResponse{AccessToken: access})
}
