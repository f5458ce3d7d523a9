package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.payments {
		if existing.ProviderID == p.ProviderID {
			return errors.New("duplicate key: provider_id")
		}
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	cp := *p
	f.payments[p.ID.Hex()] = &cp
	return nil
}

func (f *fakePaymentRepo) Get(_ context.Context, id string) (*Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return nil, apperr.NotFoundf("payment %s", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) FindByProviderID(_ context.Context, providerID string) (*Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.payments {
		if p.ProviderID == providerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) List(_ context.Context, status string) ([]Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Payment
	for _, p := range f.payments {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return apperr.NotFoundf("payment %s", id)
	}
	p.Status = status
	return nil
}

func (f *fakePaymentRepo) ListPending(_ context.Context, olderThan time.Time) ([]Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Payment
	for _, p := range f.payments {
		if p.Status == StatusPending && p.CreatedAt.Before(olderThan) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Recent(_ context.Context, _ int64) ([]Payment, error) {
	return f.List(context.Background(), "")
}

func (f *fakePaymentRepo) SumInRange(_ context.Context, _, _ time.Time) (float64, error) {
	return 0, nil
}

func (f *fakePaymentRepo) SumByMonth(_ context.Context, _, _ time.Time) ([]MonthSum, error) {
	return nil, nil
}

func (f *fakePaymentRepo) CountByStatus(_ context.Context) ([]StatusCount, error) {
	return nil, nil
}

func (f *fakePaymentRepo) EnsureIndexes(_ context.Context) error { return nil }

func testEvent(id, status string) WebhookEvent {
	return WebhookEvent{
		EventID:  id,
		Amount:   150.0,
		Currency: "ARS",
		Status:   status,
	}
}

func TestIngestIsIdempotent(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, zap.NewNop())

	first, err := svc.Ingest(context.Background(), testEvent("evt-1", StatusApproved))
	if err != nil {
		t.Fatalf("first Ingest: %v", err)
	}
	second, err := svc.Ingest(context.Background(), testEvent("evt-1", StatusApproved))
	if err != nil {
		t.Fatalf("replay Ingest: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("replay created a new payment: %s vs %s", first.ID.Hex(), second.ID.Hex())
	}
	all, _ := repo.List(context.Background(), "")
	if len(all) != 1 {
		t.Errorf("got %d payments, want 1", len(all))
	}
}

func TestIngestReplayUpdatesStatus(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, zap.NewNop())

	first, err := svc.Ingest(context.Background(), testEvent("evt-2", StatusPending))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	updated, err := svc.Ingest(context.Background(), testEvent("evt-2", StatusApproved))
	if err != nil {
		t.Fatalf("replay Ingest: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Errorf("status = %q, want approved", updated.Status)
	}

	stored, err := repo.Get(context.Background(), first.ID.Hex())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != StatusApproved {
		t.Errorf("stored status = %q, want approved", stored.Status)
	}
}

func TestIngestRejectsBadEvent(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo(), zap.NewNop())

	cases := []struct {
		name  string
		event WebhookEvent
	}{
		{"missing event id", WebhookEvent{Amount: 10, Currency: "ARS", Status: StatusPending}},
		{"zero amount", WebhookEvent{EventID: "e", Currency: "ARS", Status: StatusPending}},
		{"bad status", WebhookEvent{EventID: "e", Amount: 10, Currency: "ARS", Status: "refunded"}},
		{"bad currency", WebhookEvent{EventID: "e", Amount: 10, Currency: "PESOS", Status: StatusPending}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Ingest(context.Background(), tc.event)
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestReconcilePendingSweepsStale(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, zap.NewNop())

	stale := &Payment{ProviderID: "evt-old", Amount: 10, Currency: "ARS", Status: StatusPending}
	if err := repo.Create(context.Background(), stale); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo.mu.Lock()
	repo.payments[stale.ID.Hex()].CreatedAt = time.Now().Add(-72 * time.Hour)
	repo.mu.Unlock()

	fresh := &Payment{ProviderID: "evt-new", Amount: 10, Currency: "ARS", Status: StatusPending}
	if err := repo.Create(context.Background(), fresh); err != nil {
		t.Fatalf("seed: %v", err)
	}

	swept, err := svc.ReconcilePending(context.Background())
	if err != nil {
		t.Fatalf("ReconcilePending: %v", err)
	}
	if swept != 1 {
		t.Errorf("swept = %d, want 1", swept)
	}

	got, _ := repo.Get(context.Background(), stale.ID.Hex())
	if got.Status != StatusRejected {
		t.Errorf("stale status = %q, want rejected", got.Status)
	}
	got, _ = repo.Get(context.Background(), fresh.ID.Hex())
	if got.Status != StatusPending {
		t.Errorf("fresh status = %q, want pending", got.Status)
	}
}
