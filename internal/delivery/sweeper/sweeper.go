// Package sweeper periodically rejects pending registrations whose
// confirmation deadline has passed.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"registrar/config"
	"registrar/internal/delivery"
	"registrar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sweeper struct {
	interval time.Duration
	logger   *slog.Logger
	uc       usecase.RegistrationUsecase
	now      func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// Params holds dependencies for the sweeper, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	UC     usecase.RegistrationUsecase
}

// New creates the sweeper delivery. A zero interval or an unlimited token
// lifetime disables it.
func New(params Params) (delivery.Delivery, error) {
	s := &sweeper{
		logger: params.Logger,
		uc:     params.UC,
		now:    func() time.Time { return time.Now().UTC() },
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	if reg := params.Cfg.Registration; reg != nil && reg.TokenTTL > 0 {
		s.interval = reg.SweepInterval
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *sweeper) Serve(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("Expiry sweeper disabled")

		return nil
	}

	s.logger.Info("Starting expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	count, err := s.uc.ExpireStale(ctx, s.now())
	if err != nil {
		s.logger.Error("Failed to expire stale registrations", slog.Any("error", err))

		return
	}
	if count > 0 {
		s.logger.Info("Expired stale registrations", slog.Int64("count", count))
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	if !s.started.Load() {
		return nil
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
