package impl

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"registrar/config"
	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/service"
	"registrar/internal/usecase"
	"registrar/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	confirmationSubject = "Complete your registration"
	qrAttachmentName    = "confirmation-qr.png"
)

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<p>Hello {{.FirstName}},</p>
<p>To complete the registration of <strong>{{.Username}}</strong>, open
<a href="{{.Link}}">this confirmation link</a> or scan the code below.</p>
{{if .QRCode}}<p><img src="cid:{{.QRCode}}" alt="Confirmation QR code"></p>{{end}}
<p>Confirmation code: <code>{{.Token}}</code></p>
{{if .Validity}}<p>The link is valid for {{.Validity}}.</p>{{end}}`))

type confirmationView struct {
	FirstName string
	Username  string
	Link      string
	Token     string
	QRCode    string
	Validity  string
}

// dispatchService renders the confirmation email and hands it to the mailer.
type dispatchService struct {
	mailer  service.Mailer
	qrcode  service.QRCodeService
	metrics service.RegistrationMetrics
	baseURL string
	now     func() time.Time
	logger  *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Mailer  service.Mailer
	QRCode  service.QRCodeService
	Metrics service.RegistrationMetrics
	Config  *config.Config
	Logger  *slog.Logger
}

func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Registration != nil {
		baseURL = params.Config.Registration.ConfirmationBaseURL
	}

	return &dispatchService{
		mailer:  params.Mailer,
		qrcode:  params.QRCode,
		metrics: params.Metrics,
		baseURL: baseURL,
		now:     time.Now,
		logger:  params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeliverConfirmation returns an error wrapping usecase.ErrMalformedEvent for
// events that can never be delivered; any other error is transient.
func (srv *dispatchService) DeliverConfirmation(ctx context.Context, event *service.ConfirmationEvent) error {
	if err := checkEvent(event); err != nil {
		srv.metrics.ObserveDispatch("malformed")

		return err
	}

	if !event.ExpiresAt.IsZero() && !srv.now().Before(event.ExpiresAt) {
		srv.log(ctx).Info("Skipping expired confirmation",
			slog.String("registration_id", event.RegistrationID),
		)
		srv.metrics.ObserveDispatch("expired")

		return nil
	}

	msg, err := srv.render(ctx, event)
	if err != nil {
		srv.metrics.ObserveDispatch("failed")

		return err
	}

	if err := srv.mailer.Send(ctx, msg); err != nil {
		srv.metrics.ObserveDispatch("failed")

		return errors.Wrap(err, "failed to send confirmation email")
	}

	srv.metrics.ObserveDispatch("delivered")
	srv.log(ctx).Info("Confirmation email sent",
		slog.String("registration_id", event.RegistrationID),
		slog.String("to", util.MaskEmail(event.Email)),
	)

	return nil
}

func checkEvent(event *service.ConfirmationEvent) error {
	if event == nil {
		return errors.Wrap(usecase.ErrMalformedEvent, "empty event")
	}

	var missing []string
	if strings.TrimSpace(event.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(event.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(event.Token) == "" {
		missing = append(missing, "token")
	}
	if len(missing) > 0 {
		return errors.Wrapf(usecase.ErrMalformedEvent, "missing %s", strings.Join(missing, ", "))
	}

	return nil
}

func (srv *dispatchService) render(ctx context.Context, event *service.ConfirmationEvent) (*service.MailMessage, error) {
	link := srv.confirmationLink(event.Username, event.Token)
	view := confirmationView{
		FirstName: event.FirstName,
		Username:  event.Username,
		Link:      link,
		Token:     event.Token,
	}
	if !event.ExpiresAt.IsZero() {
		view.Validity = util.FormatDuration(event.ExpiresAt.Sub(srv.now()))
	}

	msg := &service.MailMessage{
		To:      event.Email,
		Subject: confirmationSubject,
	}

	// A missing QR code degrades the email; it does not block delivery.
	if link != "" && srv.qrcode != nil {
		png, err := srv.qrcode.GenerateConfirmationQR(link)
		if err != nil {
			srv.log(ctx).Warn("Failed to render confirmation QR code", slog.Any("error", err))
		} else {
			view.QRCode = qrAttachmentName
			msg.Attachments = append(msg.Attachments, service.Attachment{
				Name:        qrAttachmentName,
				ContentType: "image/png",
				Content:     png,
			})
		}
	}

	msg.TextBody = renderText(&view)

	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, &view); err != nil {
		return nil, errors.Wrap(err, "render confirmation email")
	}
	msg.HTMLBody = html.String()

	return msg, nil
}

func renderText(view *confirmationView) string {
	var b strings.Builder
	b.WriteString("Hello " + view.FirstName + ",\n\n")
	b.WriteString("To complete the registration of " + view.Username + ", ")
	if view.Link != "" {
		b.WriteString("open this link:\n\n" + view.Link + "\n\nor ")
	}
	b.WriteString("enter this confirmation code:\n\n" + view.Token + "\n")
	if view.Validity != "" {
		b.WriteString("\nThe code is valid for " + view.Validity + ".\n")
	}

	return b.String()
}

// confirmationLink returns "" when no public base URL is configured.
func (srv *dispatchService) confirmationLink(username, token string) string {
	if srv.baseURL == "" {
		return ""
	}

	link, err := url.Parse(srv.baseURL)
	if err != nil {
		return ""
	}
	query := link.Query()
	query.Set("username", username)
	query.Set("token", token)
	link.RawQuery = query.Encode()

	return link.String()
}
