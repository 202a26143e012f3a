package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в транспортном слое)
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrUnauth           = errors.New("unauthorized")       // 401
	ErrForbidden        = errors.New("forbidden")          // 403
	ErrNotFound         = errors.New("not_found")          // 404
	ErrConflict         = errors.New("conflict")           // 409 (например, занятый email)
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrUnexpected       = errors.New("unexpected")         // 500
)

// Ошибки токенов (всегда 403 наружу, см. guard)
var (
	ErrInvalidToken = errors.New("invalid_token") // подпись/структура/срок
	ErrRevokedToken = errors.New("revoked_token") // jti в блэклисте
)

// Коды ошибок внутри конверта ответа
const (
	ErrCodeBadParams        = 1000
	ErrCodeUnauth           = 1001
	ErrCodeForbidden        = 1003
	ErrCodeNotFound         = 1004
	ErrCodeMethodNotAllowed = 1005
	ErrCodeConflict         = 1009
	ErrCodeUnexpected       = 1500
)
