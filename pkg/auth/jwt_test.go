package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc, err := NewTokenService("secret", "hackson", time.Minute)
	require.NoError(t, err)

	token, err := svc.Generate("ada@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email())
	assert.Equal(t, "hackson", claims.Issuer)
}

func TestValidateStripsBearerPrefix(t *testing.T) {
	svc, err := NewTokenService("secret", "hackson", time.Minute)
	require.NoError(t, err)

	token, err := svc.Generate("ada@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email())
}

func TestExpiredTokenRejected(t *testing.T) {
	svc, err := NewTokenService("secret", "hackson", -time.Minute)
	require.NoError(t, err)
	// negative ttl falls back to the default, so craft expiry directly
	svc.ttl = -time.Minute

	token, err := svc.Generate("ada@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestWrongSecretRejected(t *testing.T) {
	signer, err := NewTokenService("secret-a", "hackson", time.Minute)
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-b", "hackson", time.Minute)
	require.NoError(t, err)

	token, err := signer.Generate("ada@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
}

func TestWrongIssuerRejected(t *testing.T) {
	signer, err := NewTokenService("secret", "other-issuer", time.Minute)
	require.NoError(t, err)
	verifier, err := NewTokenService("secret", "hackson", time.Minute)
	require.NoError(t, err)

	token, err := signer.Generate("ada@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestEmptyTokenRejected(t *testing.T) {
	svc, err := NewTokenService("secret", "hackson", time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.Validate("Bearer ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestEmptySecretRejected(t *testing.T) {
	_, err := NewTokenService("", "hackson", time.Minute)
	assert.Error(t, err)
}
