package guard

import (
	"context"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

// Requirement задаёт полярность шлюза: какой тип токена обязателен.
// Один параметризованный шлюз вместо двух почти одинаковых.
type Requirement int

const (
	RequireAccess Requirement = iota
	RequireRefresh
)

func (r Requirement) String() string {
	if r == RequireRefresh {
		return "refresh"
	}
	return "access"
}

// Причина отказа. ReasonNone — запрос пропущен.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoCredentials
	ReasonInvalidToken
	ReasonRevokedToken
	ReasonWrongTokenKind
	ReasonStoreUnavailable
	ReasonInsufficientPermission
)

// Detail — человекочитаемый текст для HTTP 403.
func (r Reason) Detail() string {
	switch r {
	case ReasonNoCredentials:
		return "no credentials provided"
	case ReasonInvalidToken:
		return "invalid or expired token"
	case ReasonRevokedToken:
		return "token has been revoked"
	case ReasonWrongTokenKind:
		return "wrong token type for this endpoint"
	case ReasonStoreUnavailable:
		return "token could not be verified, try again later"
	case ReasonInsufficientPermission:
		return "you are not permitted to perform this action"
	default:
		return ""
	}
}

// Code — машиночитаемый код для конверта ответа.
func (r Reason) Code() string {
	switch r {
	case ReasonNoCredentials:
		return "no_credentials"
	case ReasonInvalidToken:
		return "invalid_token"
	case ReasonRevokedToken:
		return "revoked_token"
	case ReasonWrongTokenKind:
		return "wrong_token_kind"
	case ReasonStoreUnavailable:
		return "revocation_store_unavailable"
	case ReasonInsufficientPermission:
		return "insufficient_permission"
	default:
		return ""
	}
}

// Decision — результат проверки. Вместо исключений/ошибок: шлюз
// транспортно-нейтрален, перевод в HTTP происходит в middleware.
type Decision struct {
	Claims domain.TokenClaims
	Reason Reason
}

func (d Decision) Allowed() bool { return d.Reason == ReasonNone }

func allow(c domain.TokenClaims) Decision { return Decision{Claims: c} }
func reject(r Reason) Decision            { return Decision{Reason: r} }

// Gate — шлюз bearer-токенов: парсинг -> блэклист -> тип токена.
type Gate struct {
	tokens    domain.TokenManager
	blacklist domain.TokenBlacklist
	req       Requirement
}

func New(tokens domain.TokenManager, blacklist domain.TokenBlacklist, req Requirement) *Gate {
	return &Gate{tokens: tokens, blacklist: blacklist, req: req}
}

// Check прогоняет сырой bearer-токен через все проверки.
// Недоступный блэклист = отказ (fail-closed): во время сбоя Redis
// отозванный токен не должен проскочить.
func (g *Gate) Check(ctx context.Context, raw string) Decision {
	if raw == "" {
		return reject(ReasonNoCredentials)
	}

	claims, err := g.tokens.Parse(ctx, raw)
	if err != nil {
		return reject(ReasonInvalidToken)
	}

	revoked, err := g.blacklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return reject(ReasonStoreUnavailable)
	}
	if revoked {
		return reject(ReasonRevokedToken)
	}

	if g.req == RequireAccess && claims.Refresh {
		return reject(ReasonWrongTokenKind)
	}
	if g.req == RequireRefresh && !claims.Refresh {
		return reject(ReasonWrongTokenKind)
	}

	return allow(claims)
}

// CheckRole — проверка роли уже аутентифицированного принципала.
// Чистая функция, без I/O.
func CheckRole(role domain.Role, permitted ...domain.Role) Decision {
	for _, p := range permitted {
		if role == p {
			return Decision{}
		}
	}
	return reject(ReasonInsufficientPermission)
}
