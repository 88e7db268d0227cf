package main

import (
	"context"
	"log"
	"time"

	"github.com/api-sage/ledger-registry-engine/src/internal/adapter/repository/memory"
	"github.com/api-sage/ledger-registry-engine/src/internal/config"
	"github.com/api-sage/ledger-registry-engine/src/internal/models"
	"github.com/api-sage/ledger-registry-engine/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

// Thin wiring demo: builds the in-memory engine, runs one transfer and
// one report, and prints the outcome. All domain behavior lives in the
// service and repository layers.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accountRepo := memory.NewAccountRepository()
	entryRepo := memory.NewLedgerEntryRepository()
	recordRepo := memory.NewRecordRepository(cfg.RejectDuplicateRecordIDs)

	ledgerSvc := services.NewLedgerService(accountRepo, entryRepo, cfg.MinBalance)
	registrySvc := services.NewRegistryService(recordRepo)

	if _, err := ledgerSvc.CreateAccount(ctx, models.CreateAccountRequest{AccountID: "A001", AccountType: "SAVINGS"}); err != nil {
		log.Fatalf("create account: %v", err)
	}
	if _, err := ledgerSvc.DepositFunds(ctx, models.DepositFundsRequest{AccountID: "A001", Amount: decimal.NewFromInt(50000)}); err != nil {
		log.Fatalf("deposit: %v", err)
	}

	if _, err := registrySvc.AddRecord(ctx, models.AddRecordRequest{ID: 101, Name: "An", Age: 19, Group: "CS", Score: 3.4}); err != nil {
		log.Fatalf("add record: %v", err)
	}

	report, err := registrySvc.Report(ctx)
	if err != nil {
		log.Fatalf("report: %v", err)
	}

	log.Println("ledger registry engine ready")
	log.Print(report.Data.Text)
}
