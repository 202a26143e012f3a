package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

func testSubject() domain.TokenSubject {
	return domain.TokenSubject{
		UserID: domain.UserID{},
		Email:  "a@example.com",
		Role:   domain.RoleUser,
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	m := New("test-secret", "bookly")
	ctx := context.Background()

	raw, issued, err := m.Issue(ctx, testSubject(), false, 5*time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.NotEmpty(t, issued.JTI)

	parsed, err := m.Parse(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, issued.JTI, parsed.JTI)
	assert.Equal(t, "a@example.com", parsed.Subject.Email)
	assert.Equal(t, domain.RoleUser, parsed.Subject.Role)
	assert.False(t, parsed.Refresh)
	assert.WithinDuration(t, issued.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestIssueRefreshFlag(t *testing.T) {
	m := New("test-secret", "bookly")
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, testSubject(), true, time.Hour)
	require.NoError(t, err)

	parsed, err := m.Parse(ctx, raw)
	require.NoError(t, err)
	assert.True(t, parsed.Refresh)
}

func TestIssueDistinctJTI(t *testing.T) {
	m := New("test-secret", "bookly")
	ctx := context.Background()

	_, c1, err := m.Issue(ctx, testSubject(), false, time.Minute)
	require.NoError(t, err)
	_, c2, err := m.Issue(ctx, testSubject(), false, time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, c1.JTI, c2.JTI)
}

func TestParseTampered(t *testing.T) {
	m := New("test-secret", "bookly")
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, testSubject(), false, time.Minute)
	require.NoError(t, err)

	// портим последний символ подписи
	last := raw[len(raw)-1]
	alt := byte('A')
	if last == alt {
		alt = 'B'
	}
	tampered := raw[:len(raw)-1] + string(alt)

	_, err = m.Parse(ctx, tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseTruncated(t *testing.T) {
	m := New("test-secret", "bookly")
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, testSubject(), false, time.Minute)
	require.NoError(t, err)

	_, err = m.Parse(ctx, raw[:len(raw)/2])
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseExpired(t *testing.T) {
	m := New("test-secret", "bookly")
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, testSubject(), false, -time.Second)
	require.NoError(t, err)

	_, err = m.Parse(ctx, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseWrongSecret(t *testing.T) {
	m := New("test-secret", "bookly")
	other := New("other-secret", "bookly")
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, testSubject(), false, time.Minute)
	require.NoError(t, err)

	_, err = other.Parse(ctx, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseGarbage(t *testing.T) {
	m := New("test-secret", "bookly")

	_, err := m.Parse(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}
