package mail

import (
	"log/slog"

	"registrar/config"
	"registrar/internal/domain/service"

	"go.uber.org/fx"
)

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer picks SMTP when a host is configured and the log mailer otherwise.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.SMTP
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("SMTP not configured, using log mailer")

		return NewLogMailer(params.Logger), nil
	}

	params.Logger.Info("Using SMTP mailer", slog.String("host", cfg.Host), slog.Int("port", cfg.Port))

	return NewSMTPMailer(cfg, params.Logger)
}
