package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")

	token, err := jwtAuth.IssueSession("a@b.com", 7*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtAuth.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestVerifySessionExpired(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")

	token, err := jwtAuth.IssueSession("a@b.com", -time.Minute)
	require.NoError(t, err)

	_, err = jwtAuth.VerifySession(token)
	assert.Error(t, err)
}

func TestVerifySessionWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")
	verifier := NewJWTAuthenticator("techwave-api", "techwave-api", "other-secret")

	token, err := issuer.IssueSession("a@b.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifySession(token)
	assert.Error(t, err)
}

func TestVerifySessionWrongAudience(t *testing.T) {
	issuer := NewJWTAuthenticator("another-service", "another-service", "test-secret")
	verifier := NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")

	token, err := issuer.IssueSession("a@b.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifySession(token)
	assert.Error(t, err)
}

func TestVerifySessionGarbage(t *testing.T) {
	jwtAuth := NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")

	_, err := jwtAuth.VerifySession("not-a-token")
	assert.Error(t, err)
}
