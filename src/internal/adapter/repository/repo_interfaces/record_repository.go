package repo_interfaces

import (
	"context"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
)

type RecordRepository interface {
	Append(ctx context.Context, record domain.Record) error
	All(ctx context.Context) ([]domain.Record, error)
	GetByID(ctx context.Context, id int) (domain.Record, error)
}
