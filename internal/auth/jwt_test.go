package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(ttl time.Duration) *JWTManager {
	return NewJWTManager(testSecret, "quizdeck-test", ttl)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager(time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	m := newManager(-time.Minute)
	token, err := m.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	m := newManager(time.Hour)
	token, err := m.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTManager(strings.Repeat("x", 32), "quizdeck-test", time.Hour)
	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateAccessToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "someone-else", time.Hour)
	token, err := m.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	other := newManager(time.Hour)
	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issuer")
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	m := newManager(time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := m.ValidateAccessToken(token)
		require.Error(t, err, "token %q must not validate", token)
	}
}
