package usecase

import (
	"context"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// ProductUsecase defines product submission, lookup and search.
type ProductUsecase interface {
	SubmitProduct(ctx context.Context, product *model.Product) (*repository.InsertResult, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	ListProductsByOwner(ctx context.Context, email string) ([]*model.Product, error)

	// Search returns accepted products whose tag text contains the term,
	// case-insensitively. Pending and rejected products never match.
	Search(ctx context.Context, term string) ([]*model.Product, error)

	UpdateProduct(ctx context.Context, id string, params repository.UpdateProductParams) (*repository.UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type productUsecase struct {
	productRepo repository.ProductRepository
}

func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{productRepo: productRepo}
}

func (u *productUsecase) SubmitProduct(
	ctx context.Context,
	product *model.Product,
) (*repository.InsertResult, error) {
	// New submissions start in moderation unless the client says otherwise.
	if product.Status == "" {
		product.Status = model.ProductStatusPending
	}

	return u.productRepo.CreateProduct(ctx, product)
}

func (u *productUsecase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return u.productRepo.GetProduct(ctx, id)
}

func (u *productUsecase) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return u.productRepo.ListProducts(ctx)
}

func (u *productUsecase) ListProductsByOwner(
	ctx context.Context,
	email string,
) ([]*model.Product, error) {
	return u.productRepo.ListProductsByOwner(ctx, email)
}

func (u *productUsecase) Search(ctx context.Context, term string) ([]*model.Product, error) {
	return u.productRepo.SearchAcceptedByTag(ctx, term)
}

func (u *productUsecase) UpdateProduct(
	ctx context.Context,
	id string,
	params repository.UpdateProductParams,
) (*repository.UpdateResult, error) {
	return u.productRepo.UpdateProduct(ctx, id, params)
}

func (u *productUsecase) DeleteProduct(
	ctx context.Context,
	id string,
) (*repository.DeleteResult, error) {
	return u.productRepo.DeleteProduct(ctx, id)
}
