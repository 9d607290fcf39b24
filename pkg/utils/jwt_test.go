package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndDecode(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, expiresAt, err := svc.Issue("a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, _, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Decode("not-a-token")
	assert.Error(t, err)

	token, _, err := svc.Issue("a@x.com")
	require.NoError(t, err)
	_, err = svc.Decode(token + "tampered")
	assert.Error(t, err)
}

// Expiry enforcement is delegated to the persisted record, so decoding
// an already-expired token still succeeds here.
func TestDecodeIgnoresExpiryClaim(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Hour)

	token, expiresAt, err := svc.Issue("a@x.com")
	require.NoError(t, err)
	assert.True(t, expiresAt.Before(time.Now().UTC()))

	subject, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}
