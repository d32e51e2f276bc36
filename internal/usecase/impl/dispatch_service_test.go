package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"registrar/config"
	"registrar/internal/domain/service"
	"registrar/internal/infra/metrics"
	mockSvc "registrar/internal/mocks/service"
	"registrar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceFixtures struct {
	service *dispatchService
	mailer  *mockSvc.MockMailer
	qrcode  *mockSvc.MockQRCodeService
	clock   time.Time
}

func createTestDispatchService(t *testing.T, baseURL string) *dispatchServiceFixtures {
	fx := &dispatchServiceFixtures{
		mailer: mockSvc.NewMockMailer(t),
		qrcode: mockSvc.NewMockQRCodeService(t),
		clock:  time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	srv := NewDispatchService(DispatchServiceParams{
		Mailer:  fx.mailer,
		QRCode:  fx.qrcode,
		Metrics: metrics.Noop(),
		Config:  &config.Config{Registration: &config.RegistrationConfig{ConfirmationBaseURL: baseURL}},
		Logger:  newDiscardLogger(),
	}).(*dispatchService)
	srv.now = func() time.Time { return fx.clock }
	fx.service = srv

	return fx
}

func aliceEvent() *service.ConfirmationEvent {
	return &service.ConfirmationEvent{
		RegistrationID: "0b6f3c1e-4a55-4f5e-9d0a-3f7b8a1c2d3e",
		Username:       "alice",
		FirstName:      "Alice",
		Email:          "a@x.com",
		Token:          strings.Repeat("ab", 32),
	}
}

func TestDispatchService_DeliverConfirmation(t *testing.T) {
	fx := createTestDispatchService(t, "https://registrar.example/registrations/confirm")
	event := aliceEvent()
	event.ExpiresAt = fx.clock.Add(24 * time.Hour)

	wantLink := "https://registrar.example/registrations/confirm?token=" + event.Token + "&username=alice"
	fx.qrcode.EXPECT().GenerateConfirmationQR(wantLink).Return([]byte("png"), nil)

	var sent *service.MailMessage
	fx.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Run(func(_ context.Context, msg *service.MailMessage) { sent = msg }).
		Return(nil)

	require.NoError(t, fx.service.DeliverConfirmation(context.Background(), event))
	require.NotNil(t, sent)
	assert.Equal(t, "a@x.com", sent.To)
	assert.Equal(t, confirmationSubject, sent.Subject)
	assert.Contains(t, sent.TextBody, "Hello Alice")
	assert.Contains(t, sent.TextBody, wantLink)
	assert.Contains(t, sent.TextBody, event.Token)
	assert.Contains(t, sent.TextBody, "valid for 24h0m")
	assert.Contains(t, sent.HTMLBody, "cid:"+qrAttachmentName)
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "image/png", sent.Attachments[0].ContentType)
	assert.Equal(t, []byte("png"), sent.Attachments[0].Content)
}

func TestDispatchService_NoBaseURLSendsCodeOnly(t *testing.T) {
	fx := createTestDispatchService(t, "")

	fx.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return len(msg.Attachments) == 0 &&
				strings.Contains(msg.TextBody, "enter this confirmation code") &&
				!strings.Contains(msg.TextBody, "open this link")
		})).
		Return(nil)

	require.NoError(t, fx.service.DeliverConfirmation(context.Background(), aliceEvent()))
}

func TestDispatchService_QRCodeFailureStillSends(t *testing.T) {
	fx := createTestDispatchService(t, "https://registrar.example/registrations/confirm")

	fx.qrcode.EXPECT().GenerateConfirmationQR(mock.Anything).Return(nil, errors.New("too long"))
	fx.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return len(msg.Attachments) == 0 && !strings.Contains(msg.HTMLBody, "cid:")
		})).
		Return(nil)

	require.NoError(t, fx.service.DeliverConfirmation(context.Background(), aliceEvent()))
}

func TestDispatchService_MalformedEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.ConfirmationEvent
	}{
		{name: "nil event", event: nil},
		{name: "missing email", event: func() *service.ConfirmationEvent { e := aliceEvent(); e.Email = ""; return e }()},
		{name: "missing token", event: func() *service.ConfirmationEvent { e := aliceEvent(); e.Token = " "; return e }()},
		{name: "missing username", event: func() *service.ConfirmationEvent { e := aliceEvent(); e.Username = ""; return e }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t, "")

			err := fx.service.DeliverConfirmation(context.Background(), tt.event)
			assert.ErrorIs(t, err, usecase.ErrMalformedEvent)
		})
	}
}

func TestDispatchService_ExpiredEventIsDropped(t *testing.T) {
	fx := createTestDispatchService(t, "")
	event := aliceEvent()
	event.ExpiresAt = fx.clock.Add(-time.Minute)

	assert.NoError(t, fx.service.DeliverConfirmation(context.Background(), event))
}

func TestDispatchService_SendFailureIsTransient(t *testing.T) {
	fx := createTestDispatchService(t, "")

	fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("421 try again later"))

	err := fx.service.DeliverConfirmation(context.Background(), aliceEvent())
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrMalformedEvent)
}
