package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/logger"
)

// RecordRepository is the append-only in-memory record store. Insertion
// order is the canonical order for every derived view.
type RecordRepository struct {
	mu               sync.RWMutex
	records          []domain.Record
	seen             map[int]struct{}
	rejectDuplicates bool
}

func NewRecordRepository(rejectDuplicates bool) *RecordRepository {
	return &RecordRepository{
		seen:             make(map[int]struct{}),
		rejectDuplicates: rejectDuplicates,
	}
}

func (r *RecordRepository) Append(_ context.Context, record domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rejectDuplicates {
		if _, exists := r.seen[record.ID]; exists {
			err := fmt.Errorf("%w: record %d", domain.ErrDuplicateRecord, record.ID)
			logger.Error("record repository append failed", err, logger.Fields{
				"recordId": record.ID,
			})
			return err
		}
	}

	r.records = append(r.records, record)
	r.seen[record.ID] = struct{}{}

	return nil
}

// All returns a snapshot copy. Later appends never show up in a slice a
// caller already holds.
func (r *RecordRepository) All(_ context.Context) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Record, len(r.records))
	copy(out, r.records)

	return out, nil
}

// GetByID scans in insertion order, so with duplicates allowed the
// first record added under an id wins.
func (r *RecordRepository) GetByID(_ context.Context, id int) (domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}

	return domain.Record{}, domain.ErrRecordNotFound
}
