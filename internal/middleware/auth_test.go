package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/auth"
	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*repository.InsertResult, error) {
	f.users[user.Email] = user
	return &repository.InsertResult{InsertedID: "fake"}, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) UpdateUserRole(_ context.Context, _ string, _ model.Role) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{}, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func newTestRouter(t *testing.T) (chi.Router, auth.JWTAuthenticator) {
	t.Helper()

	jwtAuth := auth.NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")
	users := &fakeUserRepo{users: map[string]*model.User{
		"admin@b.com": {Email: "admin@b.com", Role: model.RoleAdmin},
		"mod@b.com":   {Email: "mod@b.com", Role: model.RoleModerator},
		"user@b.com":  {Email: "user@b.com", Role: model.RoleUser},
	}}

	logger := zerolog.New(os.Stderr)
	gate := NewAuthenticator(jwtAuth, users, &logger)

	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.With(gate.VerifyToken, gate.RequireRole(model.RoleAdmin)).Get("/users", ok)
	r.With(gate.VerifyToken, gate.RequireRole(model.RoleModerator)).Get("/reports", ok)
	r.With(gate.VerifyToken, gate.RequireSelf("email")).Get("/payments/{email}", ok)
	r.With(gate.VerifyToken).Get("/products/user/{email}", ok)

	return r, jwtAuth
}

func doRequest(t *testing.T, r chi.Router, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	resp := doRequest(t, r, "/users", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyTokenMalformedHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Token abc")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyTokenExpired(t *testing.T) {
	r, jwtAuth := newTestRouter(t)

	token, err := jwtAuth.IssueSession("admin@b.com", -time.Minute)
	require.NoError(t, err)

	resp := doRequest(t, r, "/users", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleMatrix(t *testing.T) {
	r, jwtAuth := newTestRouter(t)

	tests := []struct {
		name     string
		email    string
		path     string
		expected int
	}{
		{"admin on admin route", "admin@b.com", "/users", http.StatusOK},
		{"moderator on admin route", "mod@b.com", "/users", http.StatusForbidden},
		{"plain user on admin route", "user@b.com", "/users", http.StatusForbidden},
		{"unknown identity on admin route", "ghost@b.com", "/users", http.StatusForbidden},
		{"moderator on moderator route", "mod@b.com", "/reports", http.StatusOK},
		// Roles are flat: admin does not imply moderator.
		{"admin on moderator route", "admin@b.com", "/reports", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtAuth.IssueSession(tt.email, time.Hour)
			require.NoError(t, err)

			resp := doRequest(t, r, tt.path, token)
			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}

func TestRequireSelf(t *testing.T) {
	r, jwtAuth := newTestRouter(t)

	token, err := jwtAuth.IssueSession("user@b.com", time.Hour)
	require.NoError(t, err)

	resp := doRequest(t, r, "/payments/user@b.com", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Another identity's history is off limits regardless of its contents.
	resp = doRequest(t, r, "/payments/admin@b.com", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestVerifyOnlyRouteAllowsAnyIdentity(t *testing.T) {
	r, jwtAuth := newTestRouter(t)

	token, err := jwtAuth.IssueSession("ghost@b.com", time.Hour)
	require.NoError(t, err)

	resp := doRequest(t, r, "/products/user/someone@else.com", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClaimsFromContext(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("techwave-api", "techwave-api", "test-secret")
	logger := zerolog.New(os.Stderr)
	gate := NewAuthenticator(jwtAuth, &fakeUserRepo{users: map[string]*model.User{}}, &logger)

	token, err := jwtAuth.IssueSession("a@b.com", time.Hour)
	require.NoError(t, err)

	var got string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = claims.Email
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate.VerifyToken(next).ServeHTTP(rec, req)

	assert.Equal(t, "a@b.com", got)
}
