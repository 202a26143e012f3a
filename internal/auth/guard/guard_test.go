package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/token"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

// fakeBlacklist — in-memory блэклист с инъекцией сбоя стора.
type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: map[string]bool{}}
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.revoked[jti] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

func testEnv() (*token.Manager, *fakeBlacklist) {
	return token.New("guard-secret", "bookly"), newFakeBlacklist()
}

func issue(t *testing.T, tm *token.Manager, refresh bool, ttl time.Duration) (string, domain.TokenClaims) {
	t.Helper()
	raw, claims, err := tm.Issue(context.Background(), domain.TokenSubject{
		Email: "a@example.com",
		Role:  domain.RoleUser,
	}, refresh, ttl)
	require.NoError(t, err)
	return raw, claims
}

func TestCheckAllowsValidAccessToken(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)

	raw, claims := issue(t, tm, false, time.Minute)

	d := g.Check(context.Background(), raw)
	require.True(t, d.Allowed())
	assert.Equal(t, ReasonNone, d.Reason)
	assert.Equal(t, claims.JTI, d.Claims.JTI)
	assert.Equal(t, "a@example.com", d.Claims.Subject.Email)
}

func TestCheckNoCredentials(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)

	d := g.Check(context.Background(), "")
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonNoCredentials, d.Reason)
}

func TestCheckInvalidToken(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)

	d := g.Check(context.Background(), "garbage.token.value")
	assert.Equal(t, ReasonInvalidToken, d.Reason)
}

func TestCheckExpiredToken(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)

	raw, _ := issue(t, tm, false, -time.Second)

	d := g.Check(context.Background(), raw)
	assert.Equal(t, ReasonInvalidToken, d.Reason)
}

func TestCheckRevokedToken(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)

	raw, claims := issue(t, tm, false, time.Minute)
	require.NoError(t, bl.Revoke(context.Background(), claims.JTI, claims.ExpiresAt))

	d := g.Check(context.Background(), raw)
	assert.Equal(t, ReasonRevokedToken, d.Reason)
}

func TestCheckWrongTokenKind(t *testing.T) {
	tm, bl := testEnv()

	accessGate := New(tm, bl, RequireAccess)
	refreshGate := New(tm, bl, RequireRefresh)

	accessRaw, _ := issue(t, tm, false, time.Minute)
	refreshRaw, _ := issue(t, tm, true, time.Minute)

	// access-шлюз не принимает refresh-токен
	d := accessGate.Check(context.Background(), refreshRaw)
	assert.Equal(t, ReasonWrongTokenKind, d.Reason)

	// refresh-шлюз не принимает access-токен
	d = refreshGate.Check(context.Background(), accessRaw)
	assert.Equal(t, ReasonWrongTokenKind, d.Reason)

	// и наоборот — всё проходит
	assert.True(t, accessGate.Check(context.Background(), accessRaw).Allowed())
	assert.True(t, refreshGate.Check(context.Background(), refreshRaw).Allowed())
}

func TestCheckStoreUnavailableFailsClosed(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)

	raw, _ := issue(t, tm, false, time.Minute)
	bl.err = errors.New("redis down")

	// недоступный блэклист -> отказ, а не пропуск
	d := g.Check(context.Background(), raw)
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonStoreUnavailable, d.Reason)
}

func TestEndToEndRevocation(t *testing.T) {
	tm, bl := testEnv()
	g := New(tm, bl, RequireAccess)
	ctx := context.Background()

	raw, _ := issue(t, tm, false, 5*time.Second)

	// сразу после выпуска токен проходит
	d := g.Check(ctx, raw)
	require.True(t, d.Allowed())
	assert.Equal(t, "a@example.com", d.Claims.Subject.Email)
	assert.Equal(t, domain.RoleUser, d.Claims.Subject.Role)

	// после ревокации тот же токен отвергается
	require.NoError(t, bl.Revoke(ctx, d.Claims.JTI, d.Claims.ExpiresAt))
	d = g.Check(ctx, raw)
	assert.Equal(t, ReasonRevokedToken, d.Reason)
}

func TestCheckRole(t *testing.T) {
	d := CheckRole(domain.RoleUser, domain.RoleAdmin)
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonInsufficientPermission, d.Reason)

	d = CheckRole(domain.RoleAdmin, domain.RoleAdmin)
	assert.True(t, d.Allowed())

	d = CheckRole(domain.RoleUser, domain.RoleAdmin, domain.RoleUser)
	assert.True(t, d.Allowed())
}

func TestReasonTexts(t *testing.T) {
	reasons := []Reason{
		ReasonNoCredentials, ReasonInvalidToken, ReasonRevokedToken,
		ReasonWrongTokenKind, ReasonStoreUnavailable, ReasonInsufficientPermission,
	}
	for _, r := range reasons {
		assert.NotEmpty(t, r.Detail())
		assert.NotEmpty(t, r.Code())
	}
	assert.Empty(t, ReasonNone.Detail())
}
