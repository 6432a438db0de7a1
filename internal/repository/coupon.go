package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
)

// CouponRepository defines the interface for coupon-related database
// operations.
type CouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*InsertResult, error)
	ListCoupons(ctx context.Context) ([]*model.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, params UpdateCouponParams) (*UpdateResult, error)
	DeleteCoupon(ctx context.Context, id string) (*DeleteResult, error)
}

// UpdateCouponParams defines the mutable fields of a coupon. Only non-nil
// fields are written.
type UpdateCouponParams struct {
	Code           *string
	ExpiryDate     *string
	Description    *string
	DiscountAmount *float64
}

const couponCollection = "coupons"

type couponMongoRepository struct {
	db *mongo.Database
}

func NewCouponMongoRepository(db *mongo.Database) CouponRepository {
	return &couponMongoRepository{db: db}
}

func (r *couponMongoRepository) CreateCoupon(
	ctx context.Context,
	coupon *model.Coupon,
) (*InsertResult, error) {
	result, err := r.db.Collection(couponCollection).InsertOne(ctx, coupon)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *couponMongoRepository) ListCoupons(ctx context.Context) ([]*model.Coupon, error) {
	cursor, err := r.db.Collection(couponCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*model.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *couponMongoRepository) UpdateCoupon(
	ctx context.Context,
	id string,
	params UpdateCouponParams,
) (*UpdateResult, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Code != nil {
		updateMap["code"] = *params.Code
	}
	if params.ExpiryDate != nil {
		updateMap["expiryDate"] = *params.ExpiryDate
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.DiscountAmount != nil {
		updateMap["discountAmount"] = *params.DiscountAmount
	}

	result, err := r.db.Collection(couponCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
	)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *couponMongoRepository) DeleteCoupon(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Collection(couponCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, err
	}

	return &DeleteResult{DeletedCount: result.DeletedCount}, nil
}
