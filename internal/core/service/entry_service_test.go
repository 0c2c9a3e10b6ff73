package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

var goodMetrics = domain.Metrics{Mood: 3, Sleep: 4, Stress: 2, Activity: 5, Nutrition: 3}

func newEntrySvc(repo *stubEntryRepo, idem IdempotencyStore) *entryService {
	svc := NewEntryService(repo, idem, zerolog.Nop()).(*entryService)
	svc.today = func() time.Time { return day1 }
	return svc
}

func TestEntryService_Create_HappyPath(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, nil)

	res, err := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Replayed {
		t.Errorf("unexpected replay")
	}
	if res.Entry.ID == 0 || res.Entry.UserID != 1 || !res.Entry.Date.Equal(day1) {
		t.Errorf("unexpected entry: %+v", res.Entry)
	}
}

func TestEntryService_Create_OutOfRangeRejected(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, nil)

	bad := goodMetrics
	bad.Mood = 6
	_, err := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: bad})
	if !errors.Is(err, domain.ErrMetricOutOfRange) {
		t.Fatalf("expected ErrMetricOutOfRange, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Errorf("expected nothing persisted")
	}
}

func TestEntryService_Create_IdempotentReplay(t *testing.T) {
	repo := newStubEntryRepo()
	idem := newStubIdempotency()
	svc := newEntrySvc(repo, idem)

	in := ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics, IdempotencyKey: "k-1"}
	first, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if !second.Replayed || second.Entry.ID != first.Entry.ID {
		t.Fatalf("expected replay of entry %d, got %+v", first.Entry.ID, second)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected a single stored entry, got %d", len(repo.byID))
	}

	// The same key from another user is a different submission.
	other, _ := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 2, Metrics: goodMetrics, IdempotencyKey: "k-1"})
	if other.Replayed {
		t.Errorf("keys must be scoped per user")
	}
}

func TestEntryService_Create_IdempotencyStoreDown_CreatesAnyway(t *testing.T) {
	repo := newStubEntryRepo()
	idem := newStubIdempotency()
	idem.lookupErr = errStoreDown
	svc := newEntrySvc(repo, idem)

	res, err := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics, IdempotencyKey: "k"})
	if err != nil || res.Replayed {
		t.Fatalf("expected fresh entry, got %+v / %v", res, err)
	}
}

func TestEntryService_Create_StoreFailure(t *testing.T) {
	repo := newStubEntryRepo()
	repo.createErr = errStoreDown
	svc := newEntrySvc(repo, nil)

	if _, err := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics}); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestEntryService_OwnershipScoping(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, nil)
	res, _ := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics})
	id := res.Entry.ID

	// A foreign entry and a missing entry look identical.
	for _, tc := range []struct {
		id, user int64
	}{{id, 2}, {999, 1}} {
		if _, err := svc.Get(context.Background(), tc.id, tc.user); !errors.Is(err, domain.ErrEntryNotFound) {
			t.Errorf("Get(%d,%d): expected ErrEntryNotFound, got %v", tc.id, tc.user, err)
		}
		if err := svc.Update(context.Background(), tc.id, tc.user, goodMetrics); !errors.Is(err, domain.ErrEntryNotFound) {
			t.Errorf("Update(%d,%d): expected ErrEntryNotFound, got %v", tc.id, tc.user, err)
		}
		if err := svc.Delete(context.Background(), tc.id, tc.user); !errors.Is(err, domain.ErrEntryNotFound) {
			t.Errorf("Delete(%d,%d): expected ErrEntryNotFound, got %v", tc.id, tc.user, err)
		}
	}

	if _, err := svc.Get(context.Background(), id, 1); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
}

func TestEntryService_Update(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, nil)
	res, _ := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics})

	updated := domain.Metrics{Mood: 1, Sleep: 1, Stress: 1, Activity: 1, Nutrition: 1}
	if err := svc.Update(context.Background(), res.Entry.ID, 1, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := repo.byID[res.Entry.ID]; got.Metrics != updated || !got.Date.Equal(day1) {
		t.Fatalf("unexpected stored entry: %+v", got)
	}

	bad := updated
	bad.Nutrition = 0
	if err := svc.Update(context.Background(), res.Entry.ID, 1, bad); !errors.Is(err, domain.ErrMetricOutOfRange) {
		t.Fatalf("expected ErrMetricOutOfRange, got %v", err)
	}

	repo.updateErr = errStoreDown
	err := svc.Update(context.Background(), res.Entry.ID, 1, updated)
	if !errors.Is(err, errStoreDown) || errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("store failure must stay distinct from not-found, got %v", err)
	}
}

func TestEntryService_ListAndDelete(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, nil)
	_, _ = svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics})
	res, _ := svc.Create(context.Background(), ports.CreateEntryInput{UserID: 1, Metrics: goodMetrics})
	_, _ = svc.Create(context.Background(), ports.CreateEntryInput{UserID: 2, Metrics: goodMetrics})

	list, err := svc.List(context.Background(), 1)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 own entries, got %d (%v)", len(list), err)
	}

	if err := svc.Delete(context.Background(), res.Entry.ID, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, _ = svc.List(context.Background(), 1)
	if len(list) != 1 {
		t.Fatalf("expected 1 entry after delete, got %d", len(list))
	}
}
