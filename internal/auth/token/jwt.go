package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

type Manager struct {
	secret []byte
	issuer string
}

func New(secret string, issuer string) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer}
}

// внутренний тип для подписи/парсинга с jwt.RegisteredClaims
type jwtClaims struct {
	User    domain.TokenSubject `json:"user"`
	Refresh bool                `json:"refresh"`
	jwt.RegisteredClaims
}

// Ensure: Manager implements domain.TokenManager
var _ domain.TokenManager = (*Manager)(nil)

// Issue выпускает подписанный JWT. Каждый вызов генерирует свежий jti —
// два токена с одинаковыми клеймами всё равно различимы.
func (m *Manager) Issue(_ context.Context, sub domain.TokenSubject, refresh bool, ttl time.Duration) (domain.Token, domain.TokenClaims, error) {
	now := time.Now().UTC()
	jti := uuid.NewString()

	cl := jwtClaims{
		User:    sub,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   sub.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	tokenStr, err := t.SignedString(m.secret)
	if err != nil {
		return "", domain.TokenClaims{}, err
	}

	return tokenStr, domain.TokenClaims{
		JTI:       jti,
		Subject:   sub,
		Refresh:   refresh,
		IssuedAt:  cl.IssuedAt.Time,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// Parse валидирует подпись/сроки и возвращает доменные клеймы.
// Любая проблема (подпись, структура, exp, пустой jti) -> ErrInvalidToken.
func (m *Manager) Parse(_ context.Context, raw domain.Token) (domain.TokenClaims, error) {
	var out jwtClaims
	tkn, err := jwt.ParseWithClaims(raw, &out, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	if out.ID == "" {
		return domain.TokenClaims{}, fmt.Errorf("%w: missing jti", domain.ErrInvalidToken)
	}
	if out.ExpiresAt == nil || out.IssuedAt == nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: missing iat/exp", domain.ErrInvalidToken)
	}

	return domain.TokenClaims{
		JTI:       out.ID,
		Subject:   out.User,
		Refresh:   out.Refresh,
		IssuedAt:  out.IssuedAt.Time,
		ExpiresAt: out.ExpiresAt.Time,
	}, nil
}
