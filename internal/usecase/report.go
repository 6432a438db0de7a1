package usecase

import (
	"context"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// ReportUsecase defines product reports. Anyone may file a report; only
// moderators list and resolve them.
type ReportUsecase interface {
	SubmitReport(ctx context.Context, report *model.Report) (*repository.InsertResult, error)
	ListReports(ctx context.Context) ([]*model.Report, error)
	DismissReport(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type reportUsecase struct {
	reportRepo repository.ReportRepository
}

func NewReportUsecase(reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{reportRepo: reportRepo}
}

func (u *reportUsecase) SubmitReport(
	ctx context.Context,
	report *model.Report,
) (*repository.InsertResult, error) {
	return u.reportRepo.CreateReport(ctx, report)
}

func (u *reportUsecase) ListReports(ctx context.Context) ([]*model.Report, error) {
	return u.reportRepo.ListReports(ctx)
}

func (u *reportUsecase) DismissReport(
	ctx context.Context,
	id string,
) (*repository.DeleteResult, error) {
	return u.reportRepo.DeleteReport(ctx, id)
}
