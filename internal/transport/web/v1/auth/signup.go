package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

// HandlerSignup обрабатывает POST /api/v1/auth/signup
type HandlerSignup struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
}

type signupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// Signup godoc
// @Summary     Register new user
// @Description Регистрация нового пользователя. Email уникален, роль по умолчанию — user.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body signupRequest true "username, email, first_name, last_name, password"
// @Success     201 {object} domain.APIEnvelope{response=domain.User}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/signup [post]
func (h *HandlerSignup) Signup(w http.ResponseWriter, r *http.Request) {
	const op = "auth.signup"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// Валидация входа (домен)
	if !domain.ValidEmail(req.Email) || !domain.ValidUsername(req.Username) || !domain.ValidPassword(req.Password) {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrBadParams, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// Хэш пароля (argon2id, соль на каждый вызов)
	hashStr, err := h.Hasher.Hash(req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	u, err := h.Users.CreateUser(r.Context(), domain.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.RoleUser,
		PassHash:  []byte(hashStr),
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "create user failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteCreated(w, r, u)
}
