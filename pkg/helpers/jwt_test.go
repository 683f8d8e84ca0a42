package helpers

import (
	"testing"
	"time"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.GenerateToken("user-1", entity.RoleUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestTokenExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.GenerateToken("user-1", entity.RoleUser)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenTampered(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, _, err := m.GenerateToken("user-1", entity.RoleUser)
	require.NoError(t, err)

	// Flip one character of the signature
	b := []byte(token)
	last := len(b) - 1
	if b[last] == 'A' {
		b[last] = 'B'
	} else {
		b[last] = 'A'
	}
	_, err = m.ParseToken(string(b))
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, _, err := m.GenerateToken("user-1", entity.RoleAdmin)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	_, err := m.ParseToken("not-a-token")
	assert.Error(t, err)
}
