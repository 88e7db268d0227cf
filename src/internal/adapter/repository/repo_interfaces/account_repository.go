package repo_interfaces

import (
	"context"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) (domain.Account, error)
	DepositFunds(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	WithdrawFunds(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	PostTransfer(ctx context.Context, fromID string, toID string, amount decimal.Decimal) (domain.Account, domain.Account, error)
}
