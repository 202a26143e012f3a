package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/config"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

type HandlerLogin struct {
	Log    *log.Logger
	Cfg    *config.Config
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
	Tokens domain.TokenManager
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message      string      `json:"message"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         domain.User `json:"user"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Возвращает пару access/refresh JWT при валидных email и пароле.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "email, password"
// @Success     200 {object} domain.APIEnvelope{response=loginResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/login [post]
func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if req.Email == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "empty email or password", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// достаём пользователя
	u, err := h.Users.UserByEmail(r.Context(), req.Email)
	if err != nil {
		logx.Error(h.Log, reqID, op, "user not found", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	// сверяем пароль
	ok, err := h.Hasher.Verify(req.Password, string(u.PassHash))
	if err != nil || !ok {
		logx.Error(h.Log, reqID, op, "password verify failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	sub := domain.TokenSubject{UserID: u.ID, Email: u.Email, Role: u.Role}

	// пара токенов: короткий access + длинный refresh
	access, _, err := h.Tokens.Issue(r.Context(), sub, false, h.Cfg.AuthAccessTTL)
	if err != nil {
		logx.Error(h.Log, reqID, op, "issue access token failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	refresh, _, err := h.Tokens.Issue(r.Context(), sub, true, h.Cfg.AuthRefreshTTL)
	if err != nil {
		logx.Error(h.Log, reqID, op, "issue refresh token failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteOKResponse(w, r, loginResponse{
		Message:      "login successful",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u,
	})
}
