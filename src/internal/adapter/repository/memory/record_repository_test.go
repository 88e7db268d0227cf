package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
)

func TestRecordRepositoryAppendPreservesInsertionOrder(t *testing.T) {
	repo := NewRecordRepository(false)

	for i, name := range []string{"An", "Binh", "Chi"} {
		err := repo.Append(context.Background(), domain.Record{ID: i + 1, Name: name, Group: "CS", Score: 3.0})
		if err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}

	records, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 3 || records[0].Name != "An" || records[2].Name != "Chi" {
		t.Fatalf("unexpected order: %v", records)
	}
}

func TestRecordRepositoryAllReturnsIsolatedCopy(t *testing.T) {
	repo := NewRecordRepository(false)
	if err := repo.Append(context.Background(), domain.Record{ID: 1, Name: "An", Group: "CS", Score: 3.4}); err != nil {
		t.Fatalf("append: %v", err)
	}

	snapshot, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	snapshot[0].Name = "mutated"

	fresh, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if fresh[0].Name != "An" {
		t.Fatal("caller mutation leaked into the repository")
	}
}

func TestRecordRepositoryDuplicatePolicy(t *testing.T) {
	strict := NewRecordRepository(true)
	if err := strict.Append(context.Background(), domain.Record{ID: 1, Name: "An"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	err := strict.Append(context.Background(), domain.Record{ID: 1, Name: "Binh"})
	if !errors.Is(err, domain.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}

	lax := NewRecordRepository(false)
	_ = lax.Append(context.Background(), domain.Record{ID: 1, Name: "An"})
	if err := lax.Append(context.Background(), domain.Record{ID: 1, Name: "Binh"}); err != nil {
		t.Fatalf("lax repository rejected a duplicate: %v", err)
	}

	first, err := lax.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if first.Name != "An" {
		t.Fatalf("expected first-added record, got %s", first.Name)
	}
}

func TestRecordRepositoryGetByIDMiss(t *testing.T) {
	repo := NewRecordRepository(false)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
