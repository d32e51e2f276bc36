package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/lifecycle"
	"registrar/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/gcppubsub" // gcppubsub:// URLs
	_ "gocloud.dev/pubsub/mempubsub" // mem:// URLs
)

// goCloudPublisher publishes through a portable gocloud.dev topic URL.
type goCloudPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at topicURL.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open topic %s", topicURL)
	}

	logger.Info("Portable Pub/Sub publisher initialized", slog.String("topic_url", topicURL))

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

func (p *goCloudPublisher) PublishConfirmationRequested(ctx context.Context, event *service.ConfirmationEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &pubsub.Message{
		Body:     data,
		Metadata: attributes,
	}); err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[GoCloudPubSub] Confirmation event published",
		slog.String("registration_id", event.RegistrationID),
	)

	return nil
}

func (p *goCloudPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(p.topic.Shutdown(ctx))
}
