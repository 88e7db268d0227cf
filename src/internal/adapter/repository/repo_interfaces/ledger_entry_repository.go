package repo_interfaces

import (
	"context"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
)

type LedgerEntryRepository interface {
	Create(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	ListByAccountID(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)
}
