package domain

import "time"

type LedgerEntryType string

const (
	LedgerEntryDebit  LedgerEntryType = "DEBIT"
	LedgerEntryCredit LedgerEntryType = "CREDIT"
)

// LedgerEntry is one journal row. Every successful deposit, withdrawal
// or transfer leg appends exactly one entry; the two legs of a transfer
// share a Reference.
type LedgerEntry struct {
	ID        string
	AccountID string
	EntryType LedgerEntryType
	Amount    string
	Reference string
	CreatedAt time.Time
}
