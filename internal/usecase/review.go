package usecase

import (
	"context"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// ReviewUsecase defines product reviews. Reviews carry no business rules;
// they are stored and returned verbatim.
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, review *model.Review) (*repository.InsertResult, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)
}

type reviewUsecase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUsecase(reviewRepo repository.ReviewRepository) ReviewUsecase {
	return &reviewUsecase{reviewRepo: reviewRepo}
}

func (u *reviewUsecase) SubmitReview(
	ctx context.Context,
	review *model.Review,
) (*repository.InsertResult, error) {
	return u.reviewRepo.CreateReview(ctx, review)
}

func (u *reviewUsecase) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return u.reviewRepo.ListReviews(ctx)
}
