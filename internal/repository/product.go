package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
)

// ProductRepository defines the interface for product-related database
// operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*InsertResult, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	ListProductsByOwner(ctx context.Context, email string) ([]*model.Product, error)
	SearchAcceptedByTag(ctx context.Context, term string) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (*UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (*DeleteResult, error)
	CountProducts(ctx context.Context) (int64, error)
}

// UpdateProductParams defines the mutable fields of a product. Only non-nil
// fields are written.
type UpdateProductParams struct {
	ProductName  *string
	PhotoURL     *string
	Tags         *[]model.ProductTag
	Description  *string
	ExternalLink *string
	Time         *string
	Status       *model.ProductStatus
}

const productCollection = "products"

type productMongoRepository struct {
	db *mongo.Database
}

func NewProductMongoRepository(db *mongo.Database) ProductRepository {
	return &productMongoRepository{db: db}
}

func (r *productMongoRepository) CreateProduct(
	ctx context.Context,
	product *model.Product,
) (*InsertResult, error) {
	result, err := r.db.Collection(productCollection).InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *productMongoRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(productCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var product model.Product
	if err := result.Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productMongoRepository) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return r.findProducts(ctx, bson.M{})
}

func (r *productMongoRepository) ListProductsByOwner(
	ctx context.Context,
	email string,
) ([]*model.Product, error) {
	return r.findProducts(ctx, bson.M{"OwnerEmail": email})
}

// SearchAcceptedByTag matches the term case-insensitively as a substring of
// any tag text, restricted to accepted products. The term is quoted so user
// input cannot inject regex syntax.
func (r *productMongoRepository) SearchAcceptedByTag(
	ctx context.Context,
	term string,
) ([]*model.Product, error) {
	return r.findProducts(ctx, bson.M{
		"status": model.ProductStatusAccepted,
		"tags.text": bson.M{
			"$regex":   regexp.QuoteMeta(term),
			"$options": "i",
		},
	})
}

func (r *productMongoRepository) UpdateProduct(
	ctx context.Context,
	id string,
	params UpdateProductParams,
) (*UpdateResult, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.ProductName != nil {
		updateMap["product_name"] = *params.ProductName
	}
	if params.PhotoURL != nil {
		updateMap["photoURL"] = *params.PhotoURL
	}
	if params.Tags != nil {
		updateMap["tags"] = *params.Tags
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.ExternalLink != nil {
		updateMap["externalLink"] = *params.ExternalLink
	}
	if params.Time != nil {
		updateMap["time"] = *params.Time
	}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}

	result, err := r.db.Collection(productCollection).UpdateOne(
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

func (r *productMongoRepository) DeleteProduct(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Collection(productCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, err
	}

	return &DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func (r *productMongoRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.db.Collection(productCollection).CountDocuments(ctx, bson.M{})
}

func (r *productMongoRepository) findProducts(
	ctx context.Context,
	filter bson.M,
) ([]*model.Product, error) {
	cursor, err := r.db.Collection(productCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
