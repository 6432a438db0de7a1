package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

type fakeUserUsecase struct {
	registered map[string]*model.User
}

func newFakeUserUsecase() *fakeUserUsecase {
	return &fakeUserUsecase{registered: map[string]*model.User{}}
}

func (f *fakeUserUsecase) Register(_ context.Context, user *model.User) (*repository.InsertResult, error) {
	if _, ok := f.registered[user.Email]; ok {
		return nil, usecase.ErrUserAlreadyExists
	}

	f.registered[user.Email] = user

	return &repository.InsertResult{InsertedID: "656f1e0c2f9b2a0001000000"}, nil
}

func (f *fakeUserUsecase) ListUsers(_ context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0, len(f.registered))
	for _, u := range f.registered {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserUsecase) HasRole(_ context.Context, email string, role model.Role) (bool, error) {
	user, ok := f.registered[email]
	if !ok {
		return false, nil
	}
	return user.Role == role, nil
}

func (f *fakeUserUsecase) PromoteUser(_ context.Context, _ string, role model.Role) (*repository.UpdateResult, error) {
	if role != model.RoleAdmin && role != model.RoleModerator {
		return nil, usecase.ErrInvalidRole
	}
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestRegisterReturnsInsertedID(t *testing.T) {
	h := NewUserHandler(newFakeUserUsecase(), NewPayloadValidator(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Ada","email":"a@b.com"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "656f1e0c2f9b2a0001000000", resp["insertedId"])
}

func TestRegisterDuplicateReturnsMarker(t *testing.T) {
	uc := newFakeUserUsecase()
	h := NewUserHandler(uc, NewPayloadValidator(), testLogger())

	body := `{"name":"Ada","email":"a@b.com"}`

	first := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	h.Register(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, second)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user already exists", resp["message"])
	assert.Nil(t, resp["insertedId"])
	assert.Len(t, uc.registered, 1)
}

func TestRoleCheckResponses(t *testing.T) {
	uc := newFakeUserUsecase()
	uc.registered["admin@b.com"] = &model.User{Email: "admin@b.com", Role: model.RoleAdmin}

	h := NewUserHandler(uc, NewPayloadValidator(), testLogger())

	r := chi.NewRouter()
	r.Get("/users/admin/{email}", h.IsAdmin)
	r.Get("/users/moderator/{email}", h.IsModerator)

	tests := []struct {
		path     string
		expected string
	}{
		{"/users/admin/admin@b.com", `{"admin":true}`},
		{"/users/moderator/admin@b.com", `{"moderator":false}`},
		{"/users/admin/ghost@b.com", `{"admin":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}
