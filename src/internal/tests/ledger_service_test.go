package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/ledger-registry-engine/src/internal/adapter/repository/memory"
	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/models"
	"github.com/api-sage/ledger-registry-engine/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newLedgerService(minBalance int64) *services.LedgerService {
	return services.NewLedgerService(
		memory.NewAccountRepository(),
		memory.NewLedgerEntryRepository(),
		decimal.NewFromInt(minBalance),
	)
}

func mustCreateAccount(t *testing.T, svc *services.LedgerService, id string, accountType string, pin string) {
	t.Helper()

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		AccountID:      id,
		AccountType:    accountType,
		TransactionPIN: pin,
	})
	if err != nil {
		t.Fatalf("create account %s: %v", id, err)
	}
}

func mustDeposit(t *testing.T, svc *services.LedgerService, id string, amount int64) {
	t.Helper()

	_, err := svc.DepositFunds(context.Background(), models.DepositFundsRequest{
		AccountID: id,
		Amount:    decimal.NewFromInt(amount),
	})
	if err != nil {
		t.Fatalf("deposit %d into %s: %v", amount, id, err)
	}
}

func accountBalance(t *testing.T, svc *services.LedgerService, id string) string {
	t.Helper()

	resp, err := svc.GetAccount(context.Background(), id)
	if err != nil {
		t.Fatalf("get account %s: %v", id, err)
	}
	return resp.Data.Balance
}

func TestLedgerServiceCreateAccountValidationError(t *testing.T) {
	svc := newLedgerService(0)

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create account request")
	}
}

func TestLedgerServiceCreateAccountDuplicateIDFails(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		AccountID:   "A001",
		AccountType: "CHECKING",
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate account id, got %v", err)
	}
}

func TestLedgerServiceDepositIncreasesBalance(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")

	resp, err := svc.DepositFunds(context.Background(), models.DepositFundsRequest{
		AccountID: "A001",
		Amount:    decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if resp.Data.Balance != "100.00" {
		t.Fatalf("expected balance 100.00, got %s", resp.Data.Balance)
	}
}

func TestLedgerServiceDepositNonPositiveAmountFails(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")

	_, err := svc.DepositFunds(context.Background(), models.DepositFundsRequest{
		AccountID: "A001",
		Amount:    decimal.Zero,
	})
	if err == nil {
		t.Fatal("expected validation error for zero deposit amount")
	}
}

func TestLedgerServiceWithdrawInsufficientFundsLeavesBalanceUnchanged(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustDeposit(t, svc, "A001", 100)

	_, err := svc.WithdrawFunds(context.Background(), models.WithdrawFundsRequest{
		AccountID: "A001",
		Amount:    decimal.NewFromInt(150),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := accountBalance(t, svc, "A001"); got != "100.00" {
		t.Fatalf("balance changed after failed withdrawal: %s", got)
	}
}

func TestLedgerServiceWithdrawRespectsMinBalanceFloor(t *testing.T) {
	svc := newLedgerService(100)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustDeposit(t, svc, "A001", 150)

	_, err := svc.WithdrawFunds(context.Background(), models.WithdrawFundsRequest{
		AccountID: "A001",
		Amount:    decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds below floor, got %v", err)
	}

	resp, err := svc.WithdrawFunds(context.Background(), models.WithdrawFundsRequest{
		AccountID: "A001",
		Amount:    decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("withdrawal above floor: %v", err)
	}
	if resp.Data.Balance != "100.00" {
		t.Fatalf("expected balance 100.00, got %s", resp.Data.Balance)
	}
}

func TestLedgerServiceDepositOnFrozenAccountFails(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustDeposit(t, svc, "A001", 100)

	if _, err := svc.FreezeAccount(context.Background(), "A001"); err != nil {
		t.Fatalf("freeze: %v", err)
	}

	_, err := svc.DepositFunds(context.Background(), models.DepositFundsRequest{
		AccountID: "A001",
		Amount:    decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if got := accountBalance(t, svc, "A001"); got != "100.00" {
		t.Fatalf("balance changed after failed deposit: %s", got)
	}
}

func TestLedgerServiceStatusTransitionsAreOneWay(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")

	if _, err := svc.FreezeAccount(context.Background(), "A001"); err != nil {
		t.Fatalf("freeze: %v", err)
	}
	if _, err := svc.CloseAccount(context.Background(), "A001"); err != nil {
		t.Fatalf("close frozen account: %v", err)
	}

	_, err := svc.FreezeAccount(context.Background(), "A001")
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState freezing a closed account, got %v", err)
	}
}

func TestLedgerServiceTransferSameAccountFails(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustDeposit(t, svc, "A001", 100)

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		FromAccountID: "A001",
		ToAccountID:   "A001",
		Amount:        decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if got := accountBalance(t, svc, "A001"); got != "100.00" {
		t.Fatalf("balance changed after failed transfer: %s", got)
	}
}

func TestLedgerServiceTransferAbsentAccountFails(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustDeposit(t, svc, "A001", 100)

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		FromAccountID: "A001",
		ToAccountID:   "A999",
		Amount:        decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for absent credit account, got %v", err)
	}
}

func TestLedgerServiceTransferMovesExactAmount(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustCreateAccount(t, svc, "A002", "CHECKING", "")
	mustDeposit(t, svc, "A001", 50000)
	mustDeposit(t, svc, "A002", 20000)

	resp, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		FromAccountID: "A001",
		ToAccountID:   "A002",
		Amount:        decimal.NewFromInt(15000),
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if resp.Data.FromBalance != "35000.00" {
		t.Fatalf("expected from balance 35000.00, got %s", resp.Data.FromBalance)
	}
	if resp.Data.ToBalance != "35000.00" {
		t.Fatalf("expected to balance 35000.00, got %s", resp.Data.ToBalance)
	}
}

func TestLedgerServiceTransferJournalsBothLegs(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustCreateAccount(t, svc, "A002", "CHECKING", "")
	mustDeposit(t, svc, "A001", 500)

	resp, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		FromAccountID: "A001",
		ToAccountID:   "A002",
		Amount:        decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	fromEntries, err := svc.ListEntries(context.Background(), "A001")
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	toEntries, err := svc.ListEntries(context.Background(), "A002")
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}

	debits := *fromEntries.Data
	credits := *toEntries.Data
	if len(debits) != 2 {
		t.Fatalf("expected deposit + transfer entries for A001, got %d", len(debits))
	}
	if len(credits) != 1 {
		t.Fatalf("expected one transfer entry for A002, got %d", len(credits))
	}

	debitLeg := debits[len(debits)-1]
	creditLeg := credits[0]
	if debitLeg.EntryType != domain.LedgerEntryDebit {
		t.Fatalf("expected DEBIT leg on A001, got %s", debitLeg.EntryType)
	}
	if creditLeg.EntryType != domain.LedgerEntryCredit {
		t.Fatalf("expected CREDIT leg on A002, got %s", creditLeg.EntryType)
	}
	if debitLeg.Reference != resp.Data.Reference || creditLeg.Reference != resp.Data.Reference {
		t.Fatal("transfer legs do not share the transfer reference")
	}
}

func TestLedgerServiceTransferFrozenCreditSideMutatesNothing(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "")
	mustCreateAccount(t, svc, "A002", "CHECKING", "")
	mustDeposit(t, svc, "A001", 500)

	if _, err := svc.FreezeAccount(context.Background(), "A002"); err != nil {
		t.Fatalf("freeze: %v", err)
	}

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		FromAccountID: "A001",
		ToAccountID:   "A002",
		Amount:        decimal.NewFromInt(200),
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for frozen credit account, got %v", err)
	}
	if got := accountBalance(t, svc, "A001"); got != "500.00" {
		t.Fatalf("debit account mutated by failed transfer: %s", got)
	}
}

func TestLedgerServiceWithdrawVerifiesTransactionPIN(t *testing.T) {
	svc := newLedgerService(0)
	mustCreateAccount(t, svc, "A001", "SAVINGS", "1234")
	mustDeposit(t, svc, "A001", 100)

	_, err := svc.WithdrawFunds(context.Background(), models.WithdrawFundsRequest{
		AccountID:      "A001",
		Amount:         decimal.NewFromInt(10),
		TransactionPIN: "9999",
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for wrong pin, got %v", err)
	}

	resp, err := svc.WithdrawFunds(context.Background(), models.WithdrawFundsRequest{
		AccountID:      "A001",
		Amount:         decimal.NewFromInt(10),
		TransactionPIN: "1234",
	})
	if err != nil {
		t.Fatalf("withdraw with correct pin: %v", err)
	}
	if resp.Data.Balance != "90.00" {
		t.Fatalf("expected balance 90.00, got %s", resp.Data.Balance)
	}
}
