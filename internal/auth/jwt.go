// Package auth issues and verifies the stateless session tokens used by the
// HTTP layer. Tokens are HS256-signed JWTs carrying the caller's email; they
// are never persisted and cannot be revoked before expiry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the identity claim embedded in a session token. The email
// is the only application claim; role is looked up fresh from the user store
// on every gated request, so a role change never requires reissuing a token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTAuthenticator signs and verifies session tokens for a single
// issuer/audience pair.
type JWTAuthenticator struct {
	audience string
	issuer   string
	secret   string
}

// NewJWTAuthenticator creates a JWTAuthenticator. The audience and issuer
// are both enforced during verification.
func NewJWTAuthenticator(audience, issuer, secret string) JWTAuthenticator {
	return JWTAuthenticator{
		audience: audience,
		issuer:   issuer,
		secret:   secret,
	}
}

// IssueSession creates a signed session token for the given email, valid for
// expiresIn from now. No identity verification happens here; trust is
// delegated entirely to the upstream login flow that supplies the email.
func (a *JWTAuthenticator) IssueSession(email string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.issuer,
			Audience:  jwt.ClaimStrings{a.audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// VerifySession validates a session token string and returns its claims.
// Expired, tampered and wrongly-signed tokens all fail verification; the
// caller is not told which.
func (a *JWTAuthenticator) VerifySession(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.audience),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
