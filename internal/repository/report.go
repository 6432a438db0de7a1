package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
)

// ReportRepository defines the interface for report-related database
// operations.
type ReportRepository interface {
	CreateReport(ctx context.Context, report *model.Report) (*InsertResult, error)
	ListReports(ctx context.Context) ([]*model.Report, error)
	DeleteReport(ctx context.Context, id string) (*DeleteResult, error)
}

const reportCollection = "reports"

type reportMongoRepository struct {
	db *mongo.Database
}

func NewReportMongoRepository(db *mongo.Database) ReportRepository {
	return &reportMongoRepository{db: db}
}

func (r *reportMongoRepository) CreateReport(
	ctx context.Context,
	report *model.Report,
) (*InsertResult, error) {
	result, err := r.db.Collection(reportCollection).InsertOne(ctx, report)
	if err != nil {
		return nil, err
	}

	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *reportMongoRepository) ListReports(ctx context.Context) ([]*model.Report, error) {
	cursor, err := r.db.Collection(reportCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportMongoRepository) DeleteReport(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Collection(reportCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, err
	}

	return &DeleteResult{DeletedCount: result.DeletedCount}, nil
}
