package auth

import (
	"log"
	"net/http"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

type HandlerLogout struct {
	Log       *log.Logger
	Blacklist domain.TokenBlacklist
}

type logoutResponse struct {
	Message string `json:"message"`
	Revoked string `json:"revoked"` // jti
}

// Logout godoc
// @Summary     Logout (revoke token)
// @Description Завершает сессию: помечает jti предъявленного токена отозванным до exp.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{response=logoutResponse}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/logout [get]
func (h *HandlerLogout) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "auth.logout"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	claims, ok := domain.ClaimsFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "no claims in context", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	// ревокация до exp: запись в блэклисте живёт не меньше самого токена
	if err := h.Blacklist.Revoke(r.Context(), claims.JTI, claims.ExpiresAt); err != nil {
		logx.Error(h.Log, reqID, op, "revoke failed", err, "jti", claims.JTI)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "jti", claims.JTI)
	v1.WriteOKResponse(w, r, logoutResponse{Message: "logged out successfully", Revoked: claims.JTI})
}
