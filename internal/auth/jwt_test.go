package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(ttlMin int) *JWTManager {
	return NewJWTManager(JWTConfig{
		Issuer:       "eventmart-test",
		Secret:       "test-secret",
		AccessTTLMin: ttlMin,
	})
}

func TestJWTRoundTrip(t *testing.T) {
	m := newTestJWT(15)

	token, exp, err := m.Sign(42, "vendor")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, "eventmart-test", claims.Issuer)
}

func TestJWTExpired(t *testing.T) {
	m := newTestJWT(-1)

	token, _, err := m.Sign(1, "user")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTTampered(t *testing.T) {
	m := newTestJWT(15)

	token, _, err := m.Sign(1, "user")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	b := []byte(token)
	last := len(b) - 1
	if b[last] == 'a' {
		b[last] = 'b'
	} else {
		b[last] = 'a'
	}

	_, err = m.Parse(string(b))
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	signer := newTestJWT(15)
	verifier := NewJWTManager(JWTConfig{Issuer: "eventmart-test", Secret: "other-secret", AccessTTLMin: 15})

	token, _, err := signer.Sign(1, "admin")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}
