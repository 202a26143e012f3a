package blacklist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV — in-memory замена Redis для тестов.
type fakeKV struct {
	data    map[string][]byte
	ttls    map[string]int
	failAll bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (f *fakeKV) SetNX(_ context.Context, key string, val []byte, ttlSeconds int) (bool, error) {
	if f.failAll {
		return false, errors.New("kv down")
	}
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	f.data[key] = val
	f.ttls[key] = ttlSeconds
	return true, nil
}

func (f *fakeKV) Exists(_ context.Context, key string) (bool, error) {
	if f.failAll {
		return false, errors.New("kv down")
	}
	_, ok := f.data[key]
	return ok, nil
}

func TestRevokeThenIsRevoked(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv)
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevokeTTLCoversTokenLifetime(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv)

	exp := time.Now().Add(30 * time.Minute)
	require.NoError(t, s.Revoke(context.Background(), "jti-ttl", exp))

	ttl := kv.ttls["jti:jti-ttl"]
	// TTL записи не короче остатка жизни токена
	assert.GreaterOrEqual(t, ttl, int(time.Until(exp).Seconds()))
}

func TestRevokeExpiredTokenStillWrites(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv)

	// exp в прошлом: запись всё равно создаётся с минимальным TTL
	require.NoError(t, s.Revoke(context.Background(), "jti-old", time.Now().Add(-time.Minute)))
	assert.Positive(t, kv.ttls["jti:jti-old"])
}

func TestStoreErrorsPropagate(t *testing.T) {
	kv := newFakeKV()
	kv.failAll = true
	s := NewStore(kv)
	ctx := context.Background()

	require.Error(t, s.Revoke(ctx, "jti-x", time.Now().Add(time.Hour)))
	_, err := s.IsRevoked(ctx, "jti-x")
	require.Error(t, err)
}
