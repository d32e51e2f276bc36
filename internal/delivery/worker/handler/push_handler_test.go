package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"registrar/config"
	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/constants"
	"registrar/internal/domain/service"
	"registrar/internal/infra/pubsub"
	usecasemocks "registrar/internal/mocks/usecase"
	"registrar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	echo     *echo.Echo
	handler  *PushHandler
	dispatch *usecasemocks.MockDispatchUsecase
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	dispatch := usecasemocks.NewMockDispatchUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dispatch: dispatch,
	})

	e := echo.New()
	e.POST("/push", h.HandlePush)

	return &pushFixture{echo: e, handler: h, dispatch: dispatch}
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/confirmations"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event *service.ConfirmationEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func (f *pushFixture) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func sampleEvent() *service.ConfirmationEvent {
	return &service.ConfirmationEvent{
		RequestID:      "req-from-event",
		RegistrationID: "4b1f6b5e-3b8e-4b8a-9d55-2f0c9c1d1e11",
		Username:       "alice",
		FirstName:      "Alice",
		Email:          "alice@example.org",
		Token:          "deadbeef",
	}
}

func TestHandlePush_DeliversWithRequestScope(t *testing.T) {
	f := newPushFixture(t)

	f.dispatch.EXPECT().DeliverConfirmation(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *service.ConfirmationEvent) error {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "alice", event.Username)
			assert.Equal(t, "deadbeef", event.Token)

			return nil
		}).Once()

	rec := f.post(pushBody(t, encodedEvent(t, sampleEvent()), map[string]string{
		constants.AttributeRequestID: "req-from-attributes",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_FallsBackToEventRequestID(t *testing.T) {
	f := newPushFixture(t)

	f.dispatch.EXPECT().DeliverConfirmation(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.ConfirmationEvent) error {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		}).Once()

	rec := f.post(pushBody(t, encodedEvent(t, sampleEvent()), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_ResponseCodes(t *testing.T) {
	tests := []struct {
		name        string
		deliverErr  error
		wantStatus  int
		wantRetried bool
	}{
		{name: "transient send failure asks for redelivery", deliverErr: errors.New("smtp: connection refused"), wantStatus: http.StatusServiceUnavailable, wantRetried: true},
		{name: "malformed event is acknowledged", deliverErr: errors.Wrap(usecase.ErrMalformedEvent, "missing token"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t)
			f.dispatch.EXPECT().DeliverConfirmation(mock.Anything, mock.Anything).Return(tt.deliverErr).Once()

			rec := f.post(pushBody(t, encodedEvent(t, sampleEvent()), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_UndecodablePayloadsAreAcknowledged(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not an event", data: base64.StdEncoding.EncodeToString([]byte("not json"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t)

			rec := f.post(pushBody(t, tt.data, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandlePush_InvalidEnvelope(t *testing.T) {
	f := newPushFixture(t)

	rec := f.post(`{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_RejectsUnauthenticatedPush(t *testing.T) {
	f := newPushFixture(t)
	f.handler.WithTokenVerifier(func(*http.Request) error { return errors.New("missing authorization header") })

	rec := f.post(pushBody(t, encodedEvent(t, sampleEvent()), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: constants.EnvProduction, provider: constants.PubSubProviderGoogle, want: true},
		{name: "google in develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle, want: false},
		{name: "local in production", env: constants.EnvProduction, provider: constants.PubSubProviderLocal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
