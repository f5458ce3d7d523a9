package payment

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper runs the pending-payment reconciliation on a cron schedule.
type Sweeper struct {
	service   PaymentService
	scheduler *cron.Cron
	spec      string
	logger    *zap.Logger
}

func NewSweeper(service PaymentService, cfg *config.Config, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		service: service,
		spec:    cfg.PaymentSweepSpec,
		logger:  logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := s.service.ReconcilePending(ctx); err != nil {
			s.logger.Error("payment reconciliation sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()
	s.logger.Info("payment reconciliation scheduled", zap.String("spec", s.spec))
	return nil
}

func (s *Sweeper) Stop() error {
	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
	return nil
}
