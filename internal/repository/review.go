package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
)

// ReviewRepository defines the interface for review-related database
// operations.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) (*InsertResult, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)
	CountReviews(ctx context.Context) (int64, error)
}

const reviewCollection = "reviews"

type reviewMongoRepository struct {
	db *mongo.Database
}

func NewReviewMongoRepository(db *mongo.Database) ReviewRepository {
	return &reviewMongoRepository{db: db}
}

func (r *reviewMongoRepository) CreateReview(
	ctx context.Context,
	review *model.Review,
) (*InsertResult, error) {
	result, err := r.db.Collection(reviewCollection).InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *reviewMongoRepository) ListReviews(ctx context.Context) ([]*model.Review, error) {
	cursor, err := r.db.Collection(reviewCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []*model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewMongoRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.db.Collection(reviewCollection).CountDocuments(ctx, bson.M{})
}
