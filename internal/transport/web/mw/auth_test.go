package mw

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/guard"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/token"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, _ time.Time) error {
	f.revoked[jti] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func testDeps() (AuthDeps, *token.Manager, *fakeBlacklist) {
	tm := token.New("mw-secret", "bookly")
	bl := &fakeBlacklist{revoked: map[string]bool{}}
	deps := AuthDeps{
		Log:         log.New(io.Discard, "", 0),
		AccessGate:  guard.New(tm, bl, guard.RequireAccess),
		RefreshGate: guard.New(tm, bl, guard.RequireRefresh),
	}
	return deps, tm, bl
}

func issueToken(t *testing.T, tm *token.Manager, role domain.Role, refresh bool) string {
	t.Helper()
	raw, _, err := tm.Issue(context.Background(), domain.TokenSubject{
		Email: "a@example.com",
		Role:  role,
	}, refresh, time.Minute)
	require.NoError(t, err)
	return raw
}

func doRequest(h http.Handler, bearer string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		r.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) domain.APIError {
	t.Helper()
	var env domain.APIEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	require.NotNil(t, env.Error)
	return *env.Error
}

func TestRequireAccessAllows(t *testing.T) {
	deps, tm, _ := testDeps()

	var gotClaims domain.TokenClaims
	h := RequireAccess(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := domain.ClaimsFromCtx(r.Context())
		require.True(t, ok)
		gotClaims = c
		w.WriteHeader(http.StatusOK)
	}))

	w := doRequest(h, issueToken(t, tm, domain.RoleUser, false))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@example.com", gotClaims.Subject.Email)
	assert.NotEmpty(t, gotClaims.JTI)
}

func TestRequireAccessNoHeader(t *testing.T) {
	deps, _, _ := testDeps()
	h := RequireAccess(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	w := doRequest(h, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "no_credentials", decodeError(t, w).Kind)
}

func TestRequireAccessRejectsRefreshToken(t *testing.T) {
	deps, tm, _ := testDeps()
	h := RequireAccess(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	w := doRequest(h, issueToken(t, tm, domain.RoleUser, true))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "wrong_token_kind", decodeError(t, w).Kind)
}

func TestRequireRefreshRejectsAccessToken(t *testing.T) {
	deps, tm, _ := testDeps()
	h := RequireRefresh(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	w := doRequest(h, issueToken(t, tm, domain.RoleUser, false))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "wrong_token_kind", decodeError(t, w).Kind)
}

func TestRequireAccessRejectsRevoked(t *testing.T) {
	deps, tm, bl := testDeps()
	h := RequireAccess(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	raw, claims, err := tm.Issue(context.Background(), domain.TokenSubject{
		Email: "a@example.com", Role: domain.RoleUser,
	}, false, time.Minute)
	require.NoError(t, err)
	require.NoError(t, bl.Revoke(context.Background(), claims.JTI, claims.ExpiresAt))

	w := doRequest(h, raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "revoked_token", decodeError(t, w).Kind)
}

func TestRequireRoles(t *testing.T) {
	deps, tm, _ := testDeps()

	adminOnly := RequireAccess(deps, RequireRoles(deps.Log, []domain.Role{domain.RoleAdmin},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	// user не проходит
	w := doRequest(adminOnly, issueToken(t, tm, domain.RoleUser, false))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "insufficient_permission", decodeError(t, w).Kind)

	// admin проходит
	w = doRequest(adminOnly, issueToken(t, tm, domain.RoleAdmin, false))
	assert.Equal(t, http.StatusOK, w.Code)
}
