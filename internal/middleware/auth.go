// Package middleware provides the request gates that sit between the router
// and the handlers: bearer-token verification, exact-role checks and the
// self-only identity check.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/auth"
	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

type contextKey struct{}

var sessionClaimsKey = contextKey{}

// ClaimsFromContext returns the verified session claims attached by
// VerifyToken. The second return is false on routes that never passed
// through the verifier.
func ClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionClaimsKey).(*auth.SessionClaims)
	return claims, ok
}

// Authenticator owns the token verifier and the role lookups used by the
// route gates.
type Authenticator struct {
	jwtAuth auth.JWTAuthenticator
	users   repository.UserRepository
	logger  *zerolog.Logger
}

func NewAuthenticator(
	jwtAuth auth.JWTAuthenticator,
	users repository.UserRepository,
	logger *zerolog.Logger,
) *Authenticator {
	return &Authenticator{
		jwtAuth: jwtAuth,
		users:   users,
		logger:  logger,
	}
}

// VerifyToken rejects requests without a valid bearer token. A missing
// header, a bad signature and an expired token are indistinguishable to the
// caller. On success the decoded claims are attached to the request context.
func (a *Authenticator) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := extractBearerToken(r)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := a.jwtAuth.VerifySession(tokenStr)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows the request only when the verified identity's stored
// role equals the required role exactly. Roles are flat: admin does not
// satisfy a moderator requirement. Must run after VerifyToken.
func (a *Authenticator) RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			user, err := a.users.GetUserByEmail(r.Context(), claims.Email)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					// No record means no role.
					writeMessage(w, http.StatusForbidden, "forbidden access")
					return
				}

				a.logger.Error().Err(err).Str("email", claims.Email).Msg("role lookup failed")
				writeMessage(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if user.Role != role {
				writeMessage(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf allows the request only when the named path parameter equals
// the verified identity's own email. A caller may query their own role or
// payment history, never another's, regardless of role. Must run after
// VerifyToken.
func (a *Authenticator) RequireSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			if chi.URLParam(r, param) != claims.Email {
				writeMessage(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
