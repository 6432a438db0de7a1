package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/techwavehq/techwave-api/internal/model"
)

// VoteRepository defines the interface for vote-related database operations.
// Up- and down-votes use separate instances backed by separate collections.
type VoteRepository interface {
	CreateVote(ctx context.Context, vote *model.Vote) (*InsertResult, error)
	ListVotesByEmail(ctx context.Context, email string) ([]*model.Vote, error)
	ListVotesByProduct(ctx context.Context, productID string) ([]*model.Vote, error)
}

type voteMongoRepository struct {
	db         *mongo.Database
	collection string
}

// NewVoteMongoRepository creates a vote repository over the named collection
// and ensures the unique (email, product_id) index that makes one-vote-per-
// user-per-product atomic at the store level.
func NewVoteMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
	collection string,
) VoteRepository {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "product_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Str("collection", collection).Msg("failed to create vote indexes")
	}

	return &voteMongoRepository{db: db, collection: collection}
}

func (r *voteMongoRepository) CreateVote(ctx context.Context, vote *model.Vote) (*InsertResult, error) {
	result, err := r.db.Collection(r.collection).InsertOne(ctx, vote)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *voteMongoRepository) ListVotesByEmail(ctx context.Context, email string) ([]*model.Vote, error) {
	return r.findVotes(ctx, bson.M{"email": email})
}

func (r *voteMongoRepository) ListVotesByProduct(
	ctx context.Context,
	productID string,
) ([]*model.Vote, error) {
	return r.findVotes(ctx, bson.M{"product_id": productID})
}

func (r *voteMongoRepository) findVotes(ctx context.Context, filter bson.M) ([]*model.Vote, error) {
	cursor, err := r.db.Collection(r.collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var votes []*model.Vote
	if err := cursor.All(ctx, &votes); err != nil {
		return nil, err
	}

	return votes, nil
}
