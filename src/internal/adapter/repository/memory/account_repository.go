package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/logger"
	"github.com/shopspring/decimal"
)

// AccountRepository is the in-memory account store. All balance and
// status mutations happen under one lock, so a posted transfer is
// all-or-nothing: both legs are validated before either account is
// touched.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		err := fmt.Errorf("%w: account %s already exists", domain.ErrInvalidArgument, account.ID)
		logger.Error("account repository create failed", err, logger.Fields{
			"accountId": account.ID,
		})
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	stored := account
	r.accounts[account.ID] = &stored

	logger.Info("account repository create success", logger.Fields{
		"accountId": account.ID,
		"type":      account.Type,
	})

	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	return *account, nil
}

func (r *AccountRepository) UpdateStatus(_ context.Context, id string, status domain.AccountStatus) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	if !account.CanTransitionTo(status) {
		err := fmt.Errorf("%w: cannot move account %s from %s to %s", domain.ErrInvalidState, id, account.Status, status)
		logger.Error("account repository update status failed", err, logger.Fields{
			"accountId": id,
			"status":    account.Status,
		})
		return domain.Account{}, err
	}

	account.Status = status
	account.UpdatedAt = time.Now().UTC()

	logger.Info("account repository update status success", logger.Fields{
		"accountId": id,
		"status":    status,
	})

	return *account, nil
}

func (r *AccountRepository) DepositFunds(_ context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	if err := creditable(account); err != nil {
		return domain.Account{}, err
	}

	account.Balance = account.Balance.Add(amount)
	account.UpdatedAt = time.Now().UTC()

	return *account, nil
}

func (r *AccountRepository) WithdrawFunds(_ context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	if err := debitable(account, amount); err != nil {
		return domain.Account{}, err
	}

	account.Balance = account.Balance.Sub(amount)
	account.UpdatedAt = time.Now().UTC()

	return *account, nil
}

// PostTransfer moves amount between two accounts. Both legs are checked
// before either balance changes, so a failure on the credit side can
// never leave a dangling debit.
func (r *AccountRepository) PostTransfer(_ context.Context, fromID string, toID string, amount decimal.Decimal) (domain.Account, domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.accounts[fromID]
	if !ok {
		return domain.Account{}, domain.Account{}, fmt.Errorf("%w: debit account %s", domain.ErrRecordNotFound, fromID)
	}
	to, ok := r.accounts[toID]
	if !ok {
		return domain.Account{}, domain.Account{}, fmt.Errorf("%w: credit account %s", domain.ErrRecordNotFound, toID)
	}

	if err := debitable(from, amount); err != nil {
		return domain.Account{}, domain.Account{}, err
	}
	if err := creditable(to); err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	now := time.Now().UTC()
	from.Balance = from.Balance.Sub(amount)
	from.UpdatedAt = now
	to.Balance = to.Balance.Add(amount)
	to.UpdatedAt = now

	logger.Info("account repository post transfer success", logger.Fields{
		"fromAccountId": fromID,
		"toAccountId":   toID,
		"amount":        amount.StringFixed(2),
	})

	return *from, *to, nil
}

func creditable(account *domain.Account) error {
	if account.Status != domain.AccountStatusActive {
		return fmt.Errorf("%w: account %s is %s", domain.ErrInvalidState, account.ID, account.Status)
	}
	return nil
}

func debitable(account *domain.Account, amount decimal.Decimal) error {
	if account.Status != domain.AccountStatusActive {
		return fmt.Errorf("%w: account %s is %s", domain.ErrInvalidState, account.ID, account.Status)
	}
	if account.Balance.Sub(amount).LessThan(account.MinBalance) {
		return fmt.Errorf("%w: account %s balance %s cannot cover %s with floor %s",
			domain.ErrInsufficientFunds, account.ID, account.Balance.StringFixed(2), amount.StringFixed(2), account.MinBalance.StringFixed(2))
	}
	return nil
}
