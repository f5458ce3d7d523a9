package payment

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// pending payments older than this are swept to rejected
const staleAfter = 48 * time.Hour

type PaymentService interface {
	Ingest(ctx context.Context, event WebhookEvent) (*Payment, error)
	Get(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, status string) ([]Payment, error)
	ReconcilePending(ctx context.Context) (int, error)
}

type PaymentServiceImpl struct {
	Repo     PaymentRepository
	logger   *zap.Logger
	validate *validator.Validate
}

func NewPaymentService(repo PaymentRepository, logger *zap.Logger) PaymentService {
	return &PaymentServiceImpl{
		Repo:     repo,
		logger:   logger,
		validate: validator.New(),
	}
}

// Ingest records a provider webhook event. Replays of an already seen
// event id update the status instead of inserting a duplicate.
func (s *PaymentServiceImpl) Ingest(ctx context.Context, event WebhookEvent) (*Payment, error) {
	if err := s.validate.Struct(event); err != nil {
		return nil, apperr.Validation("invalid webhook event: %v", err)
	}

	existing, err := s.Repo.FindByProviderID(ctx, event.EventID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status != event.Status {
			if err := s.Repo.UpdateStatus(ctx, existing.ID.Hex(), event.Status); err != nil {
				return nil, err
			}
			existing.Status = event.Status
			s.logger.Info("payment status updated from webhook replay",
				zap.String("provider_id", event.EventID),
				zap.String("status", event.Status))
		}
		return existing, nil
	}

	p := &Payment{
		ProviderID:  event.EventID,
		Amount:      event.Amount,
		Currency:    event.Currency,
		Status:      event.Status,
		Description: event.Description,
		PaidAt:      event.PaidAt,
	}
	if event.StudentID != "" {
		oid, err := primitive.ObjectIDFromHex(event.StudentID)
		if err != nil {
			return nil, apperr.Validation("invalid student id %q", event.StudentID)
		}
		p.StudentID = oid
	}
	if p.PaidAt.IsZero() && p.Status == StatusApproved {
		p.PaidAt = time.Now()
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("payment ingested",
		zap.String("provider_id", p.ProviderID),
		zap.String("status", p.Status),
		zap.Float64("amount", p.Amount))
	return p, nil
}

func (s *PaymentServiceImpl) Get(ctx context.Context, id string) (*Payment, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PaymentServiceImpl) List(ctx context.Context, status string) ([]Payment, error) {
	return s.Repo.List(ctx, status)
}

// ReconcilePending rejects payments stuck in pending past the stale
// window. Runs on the reconciliation cron schedule.
func (s *PaymentServiceImpl) ReconcilePending(ctx context.Context) (int, error) {
	stale, err := s.Repo.ListPending(ctx, time.Now().Add(-staleAfter))
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, p := range stale {
		if err := s.Repo.UpdateStatus(ctx, p.ID.Hex(), StatusRejected); err != nil {
			s.logger.Warn("failed to sweep stale payment",
				zap.String("payment_id", p.ID.Hex()), zap.Error(err))
			continue
		}
		swept++
	}
	if swept > 0 {
		s.logger.Info("stale pending payments rejected", zap.Int("count", swept))
	}
	return swept, nil
}
