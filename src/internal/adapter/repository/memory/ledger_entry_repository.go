package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/google/uuid"
)

// LedgerEntryRepository is the append-only in-memory journal.
type LedgerEntryRepository struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func NewLedgerEntryRepository() *LedgerEntryRepository {
	return &LedgerEntryRepository{}
}

func (r *LedgerEntryRepository) Create(_ context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, entry)

	return entry, nil
}

func (r *LedgerEntryRepository) ListByAccountID(_ context.Context, accountID string) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LedgerEntry, 0)
	for _, entry := range r.entries {
		if entry.AccountID == accountID {
			out = append(out, entry)
		}
	}

	return out, nil
}
