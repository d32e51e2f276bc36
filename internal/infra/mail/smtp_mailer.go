// Package mail delivers confirmation emails.
package mail

import (
	"bytes"
	"context"
	"log/slog"

	"registrar/config"
	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/service"
	"registrar/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

// smtpMailer sends messages through an SMTP relay.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer dials nothing until the first Send; the client is reused.
func NewSMTPMailer(cfg *config.SMTPConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.From == "" {
		return nil, errors.New("smtp sender address is required")
	}

	opts := []gomail.Option{
		gomail.WithTLSPolicy(parseTLSPolicy(cfg.TLSPolicy)),
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

func parseTLSPolicy(policy string) gomail.TLSPolicy {
	switch policy {
	case "none":
		return gomail.NoTLS
	case "opportunistic":
		return gomail.TLSOpportunistic
	default:
		return gomail.TLSMandatory
	}
}

// Send renders msg and hands it to the relay.
func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	out, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	logger.Info("[SMTP] Mail sent", slog.String("subject", msg.Subject))

	return nil
}

func buildMessage(from string, msg *service.MailMessage) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := out.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	}

	for _, attachment := range msg.Attachments {
		if err := out.EmbedReader(attachment.Name, bytes.NewReader(attachment.Content),
			gomail.WithFileContentType(gomail.ContentType(attachment.ContentType)),
		); err != nil {
			return nil, errors.Wrapf(err, "embed %s", attachment.Name)
		}
	}

	return out, nil
}
