package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/api-sage/ledger-registry-engine/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-registry-engine/src/internal/commons"
	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/logger"
	"github.com/api-sage/ledger-registry-engine/src/internal/models"
	"github.com/api-sage/ledger-registry-engine/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var _ service_interfaces.LedgerService = (*LedgerService)(nil)

type LedgerService struct {
	accountRepo repo_interfaces.AccountRepository
	entryRepo   repo_interfaces.LedgerEntryRepository
	minBalance  decimal.Decimal
}

func NewLedgerService(
	accountRepo repo_interfaces.AccountRepository,
	entryRepo repo_interfaces.LedgerEntryRepository,
	minBalance decimal.Decimal,
) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		minBalance:  minBalance,
	}
}

var transferRefCounter uint32

func (s *LedgerService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	pinHash, err := hashPIN(req.TransactionPIN)
	if err != nil {
		logger.Error("ledger service create account hash pin failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	account := domain.Account{
		ID:         strings.TrimSpace(req.AccountID),
		Type:       domain.AccountType(strings.ToUpper(strings.TrimSpace(req.AccountType))),
		Status:     domain.AccountStatusActive,
		Balance:    decimal.Zero,
		MinBalance: s.minBalance,
		PINHash:    pinHash,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("ledger service create account repository failed", err, logger.Fields{
			"accountId": account.ID,
		})
		if errors.Is(err, domain.ErrInvalidArgument) {
			return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("ledger service create account success", logger.Fields{
		"accountId": created.ID,
		"type":      created.Type,
	})

	return commons.SuccessResponse("account created successfully", mapAccountToResponse(created)), nil
}

func (s *LedgerService) GetAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		err := fmt.Errorf("%w: accountId is required", domain.ErrInvalidArgument)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account)), nil
}

func (s *LedgerService) DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.BalanceMutationResponse], error) {
	logger.Info("ledger service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.BalanceMutationResponse]("validation failed", err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	account, err := s.accountRepo.DepositFunds(ctx, accountID, req.Amount)
	if err != nil {
		logger.Error("ledger service deposit funds failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount.StringFixed(2),
		})
		return mutationErrorResponse(err), err
	}

	_, _ = s.entryRepo.Create(ctx, domain.LedgerEntry{
		AccountID: accountID,
		EntryType: domain.LedgerEntryCredit,
		Amount:    req.Amount.StringFixed(2),
		Reference: generateTransferReference(),
	})

	logger.Info("ledger service deposit funds success", logger.Fields{
		"accountId": accountID,
		"amount":    req.Amount.StringFixed(2),
		"balance":   account.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("funds deposited successfully", models.BalanceMutationResponse{
		AccountID: account.ID,
		Amount:    req.Amount.StringFixed(2),
		Balance:   account.Balance.StringFixed(2),
		Status:    string(account.Status),
	}), nil
}

func (s *LedgerService) WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.BalanceMutationResponse], error) {
	logger.Info("ledger service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service withdraw funds validation failed", err, nil)
		return commons.ErrorResponse[models.BalanceMutationResponse]("validation failed", err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceMutationResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceMutationResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	if err := verifyPIN(account, req.TransactionPIN); err != nil {
		logger.Error("ledger service withdraw funds pin verification failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.BalanceMutationResponse]("validation failed", err.Error()), err
	}

	account, err = s.accountRepo.WithdrawFunds(ctx, accountID, req.Amount)
	if err != nil {
		logger.Error("ledger service withdraw funds failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount.StringFixed(2),
		})
		return mutationErrorResponse(err), err
	}

	_, _ = s.entryRepo.Create(ctx, domain.LedgerEntry{
		AccountID: accountID,
		EntryType: domain.LedgerEntryDebit,
		Amount:    req.Amount.StringFixed(2),
		Reference: generateTransferReference(),
	})

	logger.Info("ledger service withdraw funds success", logger.Fields{
		"accountId": accountID,
		"amount":    req.Amount.StringFixed(2),
		"balance":   account.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("funds withdrawn successfully", models.BalanceMutationResponse{
		AccountID: account.ID,
		Amount:    req.Amount.StringFixed(2),
		Balance:   account.Balance.StringFixed(2),
		Status:    string(account.Status),
	}), nil
}

func (s *LedgerService) FreezeAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	return s.changeStatus(ctx, accountID, domain.AccountStatusFrozen, "account frozen successfully")
}

func (s *LedgerService) CloseAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	return s.changeStatus(ctx, accountID, domain.AccountStatusClosed, "account closed successfully")
}

func (s *LedgerService) changeStatus(ctx context.Context, accountID string, status domain.AccountStatus, message string) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service change status request", logger.Fields{
		"accountId": accountID,
		"status":    status,
	})

	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		err := fmt.Errorf("%w: accountId is required", domain.ErrInvalidArgument)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.UpdateStatus(ctx, accountID, status)
	if err != nil {
		logger.Error("ledger service change status failed", err, logger.Fields{
			"accountId": accountID,
			"status":    status,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInvalidState) {
			return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to change account status", "Unable to change account status right now"), err
	}

	return commons.SuccessResponse(message, mapAccountToResponse(account)), nil
}

func (s *LedgerService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromID := strings.TrimSpace(req.FromAccountID)
	toID := strings.TrimSpace(req.ToAccountID)
	if fromID == toID {
		err := fmt.Errorf("%w: cannot transfer to the same account", domain.ErrInvalidArgument)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	from, err := s.accountRepo.GetByID(ctx, fromID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			wrapped := fmt.Errorf("%w: fromAccountId does not reference an existing account", domain.ErrInvalidArgument)
			return commons.ErrorResponse[models.TransferResponse]("validation failed", wrapped.Error()), wrapped
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	if _, err := s.accountRepo.GetByID(ctx, toID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			wrapped := fmt.Errorf("%w: toAccountId does not reference an existing account", domain.ErrInvalidArgument)
			return commons.ErrorResponse[models.TransferResponse]("validation failed", wrapped.Error()), wrapped
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if err := verifyPIN(from, req.TransactionPIN); err != nil {
		logger.Error("ledger service transfer funds pin verification failed", err, logger.Fields{
			"fromAccountId": fromID,
		})
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromAfter, toAfter, err := s.accountRepo.PostTransfer(ctx, fromID, toID, req.Amount)
	if err != nil {
		logger.Error("ledger service transfer funds posting failed", err, logger.Fields{
			"fromAccountId": fromID,
			"toAccountId":   toID,
			"amount":        req.Amount.StringFixed(2),
		})
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferResponse]("Insufficient funds", err.Error()), err
		}
		if errors.Is(err, domain.ErrInvalidState) {
			return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	reference := generateTransferReference()
	_, _ = s.entryRepo.Create(ctx, domain.LedgerEntry{
		AccountID: fromID,
		EntryType: domain.LedgerEntryDebit,
		Amount:    req.Amount.StringFixed(2),
		Reference: reference,
	})
	_, _ = s.entryRepo.Create(ctx, domain.LedgerEntry{
		AccountID: toID,
		EntryType: domain.LedgerEntryCredit,
		Amount:    req.Amount.StringFixed(2),
		Reference: reference,
	})

	logger.Info("ledger service transfer funds success", logger.Fields{
		"reference":     reference,
		"fromAccountId": fromID,
		"toAccountId":   toID,
		"amount":        req.Amount.StringFixed(2),
	})

	return commons.SuccessResponse("transfer successful", models.TransferResponse{
		Reference:     reference,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        req.Amount.StringFixed(2),
		FromBalance:   fromAfter.Balance.StringFixed(2),
		ToBalance:     toAfter.Balance.StringFixed(2),
	}), nil
}

func (s *LedgerService) ListEntries(ctx context.Context, accountID string) (commons.Response[[]domain.LedgerEntry], error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		err := fmt.Errorf("%w: accountId is required", domain.ErrInvalidArgument)
		return commons.ErrorResponse[[]domain.LedgerEntry]("validation failed", err.Error()), err
	}

	entries, err := s.entryRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return commons.ErrorResponse[[]domain.LedgerEntry]("failed to list entries", "Unable to list entries right now"), err
	}

	return commons.SuccessResponse("entries fetched successfully", entries), nil
}

func mutationErrorResponse(err error) commons.Response[models.BalanceMutationResponse] {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[models.BalanceMutationResponse]("Account not found")
	case errors.Is(err, domain.ErrInsufficientFunds):
		return commons.ErrorResponse[models.BalanceMutationResponse]("Insufficient funds", err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		return commons.ErrorResponse[models.BalanceMutationResponse]("validation failed", err.Error())
	default:
		return commons.ErrorResponse[models.BalanceMutationResponse]("failed to process request", "Unable to process request right now")
	}
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:         account.ID,
		Type:       string(account.Type),
		Status:     string(account.Status),
		Balance:    account.Balance.StringFixed(2),
		MinBalance: account.MinBalance.StringFixed(2),
		CreatedAt:  account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  account.UpdatedAt.Format(time.RFC3339),
	}
}

func hashPIN(pin string) (string, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return "", nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}

	return string(hash), nil
}

func verifyPIN(account domain.Account, pin string) error {
	if account.PINHash == "" {
		return nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PINHash), []byte(strings.TrimSpace(pin))); err != nil {
		return fmt.Errorf("%w: transactionPIN is incorrect", domain.ErrInvalidArgument)
	}

	return nil
}

func generateTransferReference() string {
	now := time.Now().UTC()
	base := now.Format("20060102150405") + fmt.Sprintf("%09d", now.Nanosecond())
	counter := atomic.AddUint32(&transferRefCounter, 1) % 10000000
	suffix := fmt.Sprintf("%07d", counter)
	return base + suffix
}
