package usecase

import (
	"context"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// FeatureUsecase defines the moderator-curated featured list.
type FeatureUsecase interface {
	FeatureProduct(ctx context.Context, feature *model.Feature) (*repository.InsertResult, error)
	GetFeature(ctx context.Context, id string) (*model.Feature, error)
	ListFeatures(ctx context.Context) ([]*model.Feature, error)
}

type featureUsecase struct {
	featureRepo repository.FeatureRepository
}

func NewFeatureUsecase(featureRepo repository.FeatureRepository) FeatureUsecase {
	return &featureUsecase{featureRepo: featureRepo}
}

func (u *featureUsecase) FeatureProduct(
	ctx context.Context,
	feature *model.Feature,
) (*repository.InsertResult, error) {
	return u.featureRepo.CreateFeature(ctx, feature)
}

func (u *featureUsecase) GetFeature(ctx context.Context, id string) (*model.Feature, error) {
	return u.featureRepo.GetFeature(ctx, id)
}

func (u *featureUsecase) ListFeatures(ctx context.Context) ([]*model.Feature, error) {
	return u.featureRepo.ListFeatures(ctx)
}
