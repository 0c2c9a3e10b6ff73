package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

const validMetrics = `{"mood":4,"sleep":3,"stress":2,"activity":5,"nutrition":4}`

func TestEntryHandler_Create(t *testing.T) {
	var got ports.CreateEntryInput
	stub := &stubEntryService{
		createFn: func(ctx context.Context, in ports.CreateEntryInput) (*ports.CreateEntryResult, error) {
			got = in
			return &ports.CreateEntryResult{Entry: &domain.HealthEntry{ID: 1, UserID: in.UserID, Metrics: in.Metrics}}, nil
		},
	}
	h := NewEntryHandler(stub, &stubStatsService{})

	c, rec := newContext(http.MethodPost, "/api/healthentries", validMetrics, alice)
	c.Request().Header.Set(HeaderIdempotencyKey, "k-1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.UserID != 7 || got.IdempotencyKey != "k-1" || got.Metrics.Mood != 4 {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestEntryHandler_Create_ReplayAnswers200(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(ctx context.Context, in ports.CreateEntryInput) (*ports.CreateEntryResult, error) {
			return &ports.CreateEntryResult{Entry: &domain.HealthEntry{ID: 1}, Replayed: true}, nil
		},
	}
	h := NewEntryHandler(stub, &stubStatsService{})

	c, rec := newContext(http.MethodPost, "/api/healthentries", validMetrics, alice)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEntryHandler_Create_OutOfRange(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(ctx context.Context, in ports.CreateEntryInput) (*ports.CreateEntryResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewEntryHandler(stub, &stubStatsService{})

	c, rec := newContext(http.MethodPost, "/api/healthentries", `{"mood":9,"sleep":3,"stress":2,"activity":5,"nutrition":4}`, alice)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Get_NotFound(t *testing.T) {
	stub := &stubEntryService{
		getFn: func(ctx context.Context, id, userID int64) (*domain.HealthEntry, error) {
			return nil, domain.ErrEntryNotFound
		},
	}
	h := NewEntryHandler(stub, &stubStatsService{})

	c, rec := newContext(http.MethodGet, "/api/healthentries/3", "", alice)
	withID(c, "3")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEntryHandler_Get_BadID(t *testing.T) {
	h := NewEntryHandler(&stubEntryService{}, &stubStatsService{})

	c, _ := newContext(http.MethodGet, "/api/healthentries/abc", "", alice)
	withID(c, "abc")
	if err := h.Get(c); err == nil {
		t.Fatal("expected a bad request error")
	}
}

func TestEntryHandler_UpdateAndDelete(t *testing.T) {
	var updated, deleted int64
	stub := &stubEntryService{
		updateFn: func(ctx context.Context, id, userID int64, m domain.Metrics) error {
			updated = id
			return nil
		},
		deleteFn: func(ctx context.Context, id, userID int64) error {
			deleted = id
			return nil
		},
	}
	h := NewEntryHandler(stub, &stubStatsService{})

	c, rec := newContext(http.MethodPut, "/api/healthentries/5", validMetrics, alice)
	withID(c, "5")
	if err := h.Update(c); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if rec.Code != http.StatusNoContent || updated != 5 {
		t.Fatalf("update: code %d id %d", rec.Code, updated)
	}

	c, rec = newContext(http.MethodDelete, "/api/healthentries/5", "", alice)
	withID(c, "5")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != 5 {
		t.Fatalf("delete: code %d id %d", rec.Code, deleted)
	}
}

func TestEntryHandler_DailyStats(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stats := &stubStatsService{stats: []domain.DailyStats{{Date: day, AverageMood: 3.5, EntryCount: 2}}}
	h := NewEntryHandler(&stubEntryService{}, stats)

	c, rec := newContext(http.MethodGet, "/api/healthentries/stats/daily", "", alice)
	if err := h.DailyStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []domain.DailyStats
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].AverageMood != 3.5 || !resp[0].Date.Equal(day) {
		t.Fatalf("unexpected stats: %+v", resp)
	}
}

func TestEntryHandler_DailyStats_EmptyIs404(t *testing.T) {
	h := NewEntryHandler(&stubEntryService{}, &stubStatsService{stats: []domain.DailyStats{}})

	c, rec := newContext(http.MethodGet, "/api/healthentries/stats/daily", "", alice)
	if err := h.DailyStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
