package domain

import "context"

// Ключи для хранения принципала запроса в контексте
type ctxKey int

const claimsCtxKey ctxKey = iota + 1

// Клеймы живут в контексте только на время обработки запроса
func WithClaims(ctx context.Context, c TokenClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, c)
}

func ClaimsFromCtx(ctx context.Context) (TokenClaims, bool) {
	c, ok := ctx.Value(claimsCtxKey).(TokenClaims)
	return c, ok
}
