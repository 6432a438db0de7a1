package usecase

import (
	"context"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// CouponUsecase defines admin-managed discount coupons.
type CouponUsecase interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*repository.InsertResult, error)
	ListCoupons(ctx context.Context) ([]*model.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, params repository.UpdateCouponParams) (*repository.UpdateResult, error)
	DeleteCoupon(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type couponUsecase struct {
	couponRepo repository.CouponRepository
}

func NewCouponUsecase(couponRepo repository.CouponRepository) CouponUsecase {
	return &couponUsecase{couponRepo: couponRepo}
}

func (u *couponUsecase) CreateCoupon(
	ctx context.Context,
	coupon *model.Coupon,
) (*repository.InsertResult, error) {
	return u.couponRepo.CreateCoupon(ctx, coupon)
}

func (u *couponUsecase) ListCoupons(ctx context.Context) ([]*model.Coupon, error) {
	return u.couponRepo.ListCoupons(ctx)
}

func (u *couponUsecase) UpdateCoupon(
	ctx context.Context,
	id string,
	params repository.UpdateCouponParams,
) (*repository.UpdateResult, error) {
	return u.couponRepo.UpdateCoupon(ctx, id, params)
}

func (u *couponUsecase) DeleteCoupon(
	ctx context.Context,
	id string,
) (*repository.DeleteResult, error) {
	return u.couponRepo.DeleteCoupon(ctx, id)
}
