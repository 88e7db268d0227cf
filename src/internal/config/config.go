package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultMinBalance = "0"

type Config struct {
	// MinBalance is the floor every account keeps after a withdrawal.
	// It is a ledger-wide policy, not caller-settable per account.
	MinBalance decimal.Decimal

	// RejectDuplicateRecordIDs makes the registry refuse a second add
	// with an already-seen record id. Off by default: the registry then
	// allows shadow entries and lookups resolve to the first one added.
	RejectDuplicateRecordIDs bool
}

func Load() (Config, error) {
	minBalanceRaw := strings.TrimSpace(os.Getenv("MIN_BALANCE"))
	if minBalanceRaw == "" {
		minBalanceRaw = defaultMinBalance
	}

	minBalance, err := decimal.NewFromString(minBalanceRaw)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_BALANCE %q: %w", minBalanceRaw, err)
	}
	if minBalance.LessThan(decimal.Zero) {
		return Config{}, fmt.Errorf("MIN_BALANCE cannot be negative")
	}

	rejectDuplicates := false
	switch strings.ToLower(strings.TrimSpace(os.Getenv("REJECT_DUPLICATE_RECORD_IDS"))) {
	case "1", "true", "yes":
		rejectDuplicates = true
	}

	return Config{
		MinBalance:               minBalance,
		RejectDuplicateRecordIDs: rejectDuplicates,
	}, nil
}
