package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

var (
	// ErrUserAlreadyExists signals an idempotent registration retry, not a
	// failure. Handlers translate it into the "user already exists" marker.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidRole is returned when a promotion names a role that cannot
	// be granted.
	ErrInvalidRole = errors.New("invalid role")
)

// UserUsecase defines user registration, role queries and role promotion.
type UserUsecase interface {
	// Register creates a user record. Registering an email twice is a no-op
	// reported as ErrUserAlreadyExists; the unique index on email makes the
	// guard atomic under concurrent calls.
	Register(ctx context.Context, user *model.User) (*repository.InsertResult, error)

	ListUsers(ctx context.Context) ([]*model.User, error)

	// HasRole reports whether the stored role for email equals role exactly.
	// A missing record resolves to no role, not an error.
	HasRole(ctx context.Context, email string, role model.Role) (bool, error)

	// PromoteUser sets the role of the user identified by id. Only admin and
	// moderator can be granted.
	PromoteUser(ctx context.Context, id string, role model.Role) (*repository.UpdateResult, error)
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) Register(ctx context.Context, user *model.User) (*repository.InsertResult, error) {
	result, err := u.userRepo.CreateUser(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return result, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]*model.User, error) {
	return u.userRepo.ListUsers(ctx)
}

func (u *userUsecase) HasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, err
	}

	return user.Role == role, nil
}

func (u *userUsecase) PromoteUser(
	ctx context.Context,
	id string,
	role model.Role,
) (*repository.UpdateResult, error) {
	if role != model.RoleAdmin && role != model.RoleModerator {
		return nil, ErrInvalidRole
	}

	return u.userRepo.UpdateUserRole(ctx, id, role)
}
