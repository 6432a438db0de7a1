package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
)

// FeatureRepository defines the interface for featured-list database
// operations.
type FeatureRepository interface {
	CreateFeature(ctx context.Context, feature *model.Feature) (*InsertResult, error)
	GetFeature(ctx context.Context, id string) (*model.Feature, error)
	ListFeatures(ctx context.Context) ([]*model.Feature, error)
}

const featureCollection = "features"

type featureMongoRepository struct {
	db *mongo.Database
}

func NewFeatureMongoRepository(db *mongo.Database) FeatureRepository {
	return &featureMongoRepository{db: db}
}

func (r *featureMongoRepository) CreateFeature(
	ctx context.Context,
	feature *model.Feature,
) (*InsertResult, error) {
	result, err := r.db.Collection(featureCollection).InsertOne(ctx, feature)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *featureMongoRepository) GetFeature(ctx context.Context, id string) (*model.Feature, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(featureCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var feature model.Feature
	if err := result.Decode(&feature); err != nil {
		return nil, err
	}

	return &feature, nil
}

func (r *featureMongoRepository) ListFeatures(ctx context.Context) ([]*model.Feature, error) {
	cursor, err := r.db.Collection(featureCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var features []*model.Feature
	if err := cursor.All(ctx, &features); err != nil {
		return nil, err
	}

	return features, nil
}
