package usecase

import (
	"context"

	"github.com/techwavehq/techwave-api/internal/repository"
)

// Stats aggregates the headline counts shown on the admin dashboard.
type Stats struct {
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
	Reviews  int64 `json:"reviews"`
}

// StatsUsecase computes admin dashboard statistics.
type StatsUsecase interface {
	AdminStats(ctx context.Context) (*Stats, error)
}

type statsUsecase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

func NewStatsUsecase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) StatsUsecase {
	return &statsUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

func (u *statsUsecase) AdminStats(ctx context.Context) (*Stats, error) {
	users, err := u.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	products, err := u.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := u.reviewRepo.CountReviews(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:    users,
		Products: products,
		Reviews:  reviews,
	}, nil
}
