package domain

import (
	"context"
	"time"
)

type Token = string

// Снимок пользователя внутри токена: email и роль на момент выпуска
type TokenSubject struct {
	UserID UserID `json:"uid"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Клеймы валидного токена. JTI обязателен — токен без него считается битым.
type TokenClaims struct {
	JTI       string
	Subject   TokenSubject
	Refresh   bool // true: refresh-токен, false: access-токен
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) (bool, error)
}

// Выпуск и парсинг токенов (JWT, реализация в internal/auth/token)
type TokenManager interface {
	Issue(ctx context.Context, sub TokenSubject, refresh bool, ttl time.Duration) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// Блэклист токенов по jti (реализация — Redis)
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, exp time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
