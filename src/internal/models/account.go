package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountID      string `json:"accountId"`
	AccountType    string `json:"accountType"`
	TransactionPIN string `json:"transactionPIN,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}

	accountType := strings.ToUpper(strings.TrimSpace(r.AccountType))
	if accountType == "" {
		errs = append(errs, "accountType is required")
	} else if accountType != "SAVINGS" && accountType != "CHECKING" {
		errs = append(errs, "accountType must be one of SAVINGS, CHECKING")
	}

	pin := strings.TrimSpace(r.TransactionPIN)
	if pin != "" && (len(pin) != 4 || !digitsOnly(pin)) {
		errs = append(errs, "transactionPIN must be exactly 4 digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Balance    string `json:"balance"`
	MinBalance string `json:"minBalance"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type DepositFundsRequest struct {
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r DepositFundsRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type WithdrawFundsRequest struct {
	AccountID      string          `json:"accountId"`
	Amount         decimal.Decimal `json:"amount"`
	TransactionPIN string          `json:"transactionPIN,omitempty"`
}

func (r WithdrawFundsRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type BalanceMutationResponse struct {
	AccountID string `json:"accountId"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance"`
	Status    string `json:"status"`
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
