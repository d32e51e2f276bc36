package worker

import (
	"context"
	"log/slog"
	"sync"

	"registrar/config"
	"registrar/internal/delivery"
	"registrar/internal/delivery/worker/handler"
	"registrar/internal/domain/constants"
	"registrar/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/gcppubsub" // gcppubsub:// URLs
	_ "gocloud.dev/pubsub/mempubsub" // mem:// URLs
)

// subscriber pulls confirmation events from a portable gocloud.dev subscription.
// It is the pull counterpart of the push endpoint for the gocloud provider.
type subscriber struct {
	url     string
	open    func(ctx context.Context, url string) (*pubsub.Subscription, error)
	logger  *slog.Logger
	handler *handler.PushHandler

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// SubscriberParams holds dependencies for the pull subscriber
type SubscriberParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewSubscriber creates the pull delivery. It serves nothing unless the
// gocloud provider has a subscription URL configured.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	sub := &subscriber{
		open:    pubsub.OpenSubscription,
		logger:  params.Logger,
		handler: params.PushHandler,
		done:    make(chan struct{}),
	}
	if cfg := params.Cfg.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderGoCloud {
		sub.url = cfg.SubscriptionURL
	}

	params.Lc.Append(fx.Hook{
		OnStop: sub.stop,
	})

	return sub, nil
}

// Serve receives until stopped. Messages are acked unless processing failed
// with a retryable error, in which case they are nacked when the driver allows it.
func (s *subscriber) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.url == "" {
		s.logger.Info("Pull subscriber disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	subscription, err := s.open(ctx, s.url)
	if err != nil {
		return errors.Wrapf(err, "open subscription %s", s.url)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer shutdownCancel()
		if err := subscription.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("Failed to shut down subscription", slog.Any("error", err))
		}
	}()

	s.logger.Info("Starting pull subscriber", slog.String("subscription_url", s.url))

	for {
		msg, err := subscription.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "receive confirmation event")
		}

		s.handle(ctx, msg)
	}
}

func (s *subscriber) handle(ctx context.Context, msg *pubsub.Message) {
	err := s.handler.Process(ctx, msg.Body, msg.Metadata)
	if err != nil && handler.IsRetryable(err) && msg.Nackable() {
		msg.Nack()

		return
	}

	msg.Ack()
}

func (s *subscriber) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	s.logger.Info("Shutting down pull subscriber")
	cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
