package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	for _, plain := range []string{"secret1", "correct horse battery staple", "päss wörd"} {
		hash, err := HashPassword(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, hash)
		assert.True(t, CompareHashAndPassword(hash, plain))
	}
}

func TestPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.False(t, CompareHashAndPassword(hash, "secret2"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
