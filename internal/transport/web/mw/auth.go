package mw

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/guard"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
)

// AuthDeps — зависимости охранных middleware
type AuthDeps struct {
	Log         *log.Logger
	AccessGate  *guard.Gate
	RefreshGate *guard.Gate
}

// RequireAccess пропускает только валидный access-токен.
func RequireAccess(deps AuthDeps, next http.Handler) http.Handler {
	return requireToken(deps.Log, deps.AccessGate, next)
}

// RequireRefresh пропускает только валидный refresh-токен.
func RequireRefresh(deps AuthDeps, next http.Handler) http.Handler {
	return requireToken(deps.Log, deps.RefreshGate, next)
}

// requireToken — общий шлюз: извлечение bearer -> guard.Check -> 403/пропуск.
// Любой отказ шлюза наружу — HTTP 403 с кодом причины и текстом.
func requireToken(l *log.Logger, g *guard.Gate, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))

		d := g.Check(r.Context(), raw)
		if !d.Allowed() {
			reqID := RequestIDFromCtx(r.Context())
			logx.Error(l, reqID, "mw.auth", "rejected", nil,
				"reason", d.Reason.Code(), "path", r.URL.Path)
			writeForbidden(w, d.Reason)
			return
		}

		ctx := domain.WithClaims(r.Context(), d.Claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles — ролевой шлюз, ставится после RequireAccess/RequireRefresh.
func RequireRoles(l *log.Logger, roles []domain.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := domain.ClaimsFromCtx(r.Context())
		if !ok {
			// роль проверяется только после токен-шлюза
			writeForbidden(w, guard.ReasonNoCredentials)
			return
		}

		if d := guard.CheckRole(claims.Subject.Role, roles...); !d.Allowed() {
			reqID := RequestIDFromCtx(r.Context())
			logx.Error(l, reqID, "mw.roles", "rejected", nil,
				"role", string(claims.Subject.Role), "path", r.URL.Path)
			writeForbidden(w, d.Reason)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeForbidden(w http.ResponseWriter, reason guard.Reason) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	env := domain.FailKind(domain.ErrCodeForbidden, reason.Code(), reason.Detail())
	_ = json.NewEncoder(w).Encode(env)
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
