package mail

import (
	"context"
	"log/slog"

	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/service"
)

// logMailer writes message metadata to the log instead of sending it.
// Used when no SMTP host is configured.
type logMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[LogMailer] Mail delivery skipped, SMTP not configured",
		slog.String("subject", msg.Subject),
		slog.Int("attachments", len(msg.Attachments)),
	)

	return nil
}
