package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
)

// PaymentRepository defines the interface for payment-record database
// operations.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *model.Payment) (*InsertResult, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

const paymentCollection = "payments"

type paymentMongoRepository struct {
	db *mongo.Database
}

func NewPaymentMongoRepository(db *mongo.Database) PaymentRepository {
	return &paymentMongoRepository{db: db}
}

func (r *paymentMongoRepository) CreatePayment(
	ctx context.Context,
	payment *model.Payment,
) (*InsertResult, error) {
	result, err := r.db.Collection(paymentCollection).InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *paymentMongoRepository) ListPaymentsByEmail(
	ctx context.Context,
	email string,
) ([]*model.Payment, error) {
	cursor, err := r.db.Collection(paymentCollection).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*model.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}
