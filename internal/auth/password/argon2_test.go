package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewDefault()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	ok, err := h.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := NewDefault()

	h1, err := h.Hash("samepassword1!")
	require.NoError(t, err)
	h2, err := h.Hash("samepassword1!")
	require.NoError(t, err)

	// соль случайная — хэши текстуально различаются
	assert.NotEqual(t, h1, h2)

	// но оба верифицируются
	for _, hash := range []string{h1, h2} {
		ok, err := h.Verify("samepassword1!", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewDefault()

	// битый хэш — это отказ верификации, а не ошибка/паника
	ok, err := h.Verify("whatever", "$argon2id$broken")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Verify("whatever", "")
	require.NoError(t, err)
	assert.False(t, ok)
}
