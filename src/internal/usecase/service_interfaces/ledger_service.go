package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-registry-engine/src/internal/commons"
	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/models"
)

type LedgerService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)
	DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.BalanceMutationResponse], error)
	WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.BalanceMutationResponse], error)
	FreezeAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)
	CloseAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)
	TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	ListEntries(ctx context.Context, accountID string) (commons.Response[[]domain.LedgerEntry], error)
}
