package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

type Account struct {
	ID         string
	Type       AccountType
	Status     AccountStatus
	Balance    decimal.Decimal
	MinBalance decimal.Decimal
	PINHash    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanTransitionTo reports whether the one-way status machine allows the
// move: ACTIVE -> FROZEN, ACTIVE -> CLOSED, FROZEN -> CLOSED. Nothing
// leaves CLOSED and nothing returns to ACTIVE.
func (a Account) CanTransitionTo(next AccountStatus) bool {
	switch a.Status {
	case AccountStatusActive:
		return next == AccountStatusFrozen || next == AccountStatusClosed
	case AccountStatusFrozen:
		return next == AccountStatusClosed
	default:
		return false
	}
}

func IsValidAccountType(t AccountType) bool {
	return t == AccountTypeSavings || t == AccountTypeChecking
}
