package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndVerifyUserToken(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.MintUserToken(7, "alice@example.com", true, time.Hour)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, SubjectUser, claims.Subject)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestMintAndVerifyRunnerToken(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.MintRunnerToken(3, time.Hour)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, SubjectRunner, claims.Subject)
	assert.Equal(t, 3, claims.RunnerID)
	assert.Zero(t, claims.UserID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret")
	token, err := m.MintUserToken(1, "a@b.c", false, -time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").MintUserToken(1, "a@b.c", false, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndVerifySecret(t *testing.T) {
	secret, err := GenerateSecret(32)
	require.NoError(t, err)
	assert.Len(t, secret, 64)

	stored, err := HashSecret(secret)
	require.NoError(t, err)
	assert.Contains(t, stored, "$")
	assert.NotContains(t, stored, secret)

	assert.True(t, VerifySecret(secret, stored))
	assert.False(t, VerifySecret("wrong", stored))
	assert.False(t, VerifySecret(secret, "malformed"))
}

func TestHashSecretSalted(t *testing.T) {
	a, err := HashSecret("same-secret")
	require.NoError(t, err)
	b, err := HashSecret("same-secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, VerifySecret("same-secret", a))
	assert.True(t, VerifySecret("same-secret", b))
}

func TestSealRoundTrip(t *testing.T) {
	s, err := NewSealer("operator-passphrase")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte(`{"api_key":"sk-123"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "sk-123")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"api_key":"sk-123"}`, string(plain))
}

func TestSealWrongKeyFails(t *testing.T) {
	a, err := NewSealer("key-a")
	require.NoError(t, err)
	b, err := NewSealer("key-b")
	require.NoError(t, err)

	sealed, err := a.Seal([]byte("secret"))
	require.NoError(t, err)
	_, err = b.Open(sealed)
	assert.Error(t, err)
}

func TestSealerRequiresKey(t *testing.T) {
	_, err := NewSealer("")
	assert.ErrorIs(t, err, ErrSealKeyMissing)
}
