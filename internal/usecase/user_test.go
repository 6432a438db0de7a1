package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// duplicateKeyErr mimics the server error the driver returns when a unique
// index rejects an insert.
var duplicateKeyErr = mongo.WriteException{
	WriteErrors: mongo.WriteErrors{{Code: 11000}},
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*repository.InsertResult, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, duplicateKeyErr
	}

	f.users[user.Email] = user

	return &repository.InsertResult{InsertedID: user.Email}, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateUserRole(_ context.Context, _ string, _ model.Role) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func TestRegisterIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	ctx := context.Background()

	result, err := uc.Register(ctx, &model.User{Email: "a@b.com"})
	require.NoError(t, err)
	assert.NotNil(t, result.InsertedID)

	// The same email a second time is a no-op, not a failure.
	_, err = uc.Register(ctx, &model.User{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestHasRole(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin@b.com"] = &model.User{Email: "admin@b.com", Role: model.RoleAdmin}

	uc := NewUserUsecase(repo)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		role     model.Role
		expected bool
	}{
		{"admin is admin", "admin@b.com", model.RoleAdmin, true},
		// Flat roles: admin does not satisfy moderator.
		{"admin is not moderator", "admin@b.com", model.RoleModerator, false},
		{"unknown user has no role", "ghost@b.com", model.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := uc.HasRole(ctx, tt.email, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestPromoteUserRejectsUnknownRole(t *testing.T) {
	uc := NewUserUsecase(newFakeUserRepo())

	_, err := uc.PromoteUser(context.Background(), "656f1e0c2f9b2a0001000000", model.Role("superuser"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = uc.PromoteUser(context.Background(), "656f1e0c2f9b2a0001000000", model.RoleModerator)
	assert.NoError(t, err)
}
