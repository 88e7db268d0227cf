package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-registry-engine/src/internal/commons"
	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/models"
)

type RegistryService interface {
	AddRecord(ctx context.Context, req models.AddRecordRequest) (commons.Response[models.RecordResponse], error)
	AllRecords(ctx context.Context) ([]domain.Record, error)
	FindRecordByID(ctx context.Context, id int) (commons.Response[models.RecordResponse], error)
	FilterByGroup(ctx context.Context, group string) ([]domain.Record, error)
	SortByScoreDescThenName(ctx context.Context) ([]domain.Record, error)
	GroupByGroup(ctx context.Context) ([]domain.RecordGroup, error)
	Report(ctx context.Context) (commons.Response[models.RegistryReportResponse], error)
}
