package impl

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"registrar/config"
	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/service"
	"registrar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func aliceInput() *usecase.SubmitInput {
	return &usecase.SubmitInput{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "a@x.com",
		Website:   "https://wonderland.example",
		Password:  "Secr3t!",
	}
}

// expectPublish captures every published event.
func (fx *registrationFixtures) expectPublish(err error) *[]*service.ConfirmationEvent {
	var events []*service.ConfirmationEvent
	fx.publisher.EXPECT().
		PublishConfirmationRequested(mock.Anything, mock.AnythingOfType("*service.ConfirmationEvent")).
		Run(func(_ context.Context, event *service.ConfirmationEvent) {
			events = append(events, event)
		}).
		Return(err)

	return &events
}

func requireFailure(t *testing.T, outcome *usecase.Outcome, want *domainerrors.BaseError) {
	t.Helper()

	require.NotNil(t, outcome)
	require.False(t, outcome.Success, outcome.Message)
	require.NotNil(t, outcome.Failure)
	assert.ErrorIs(t, outcome.Err(), want)
	assert.Equal(t, want.ErrorCode(), outcome.Failure.ErrorCode())
}

func TestRegistrationService_AliceScenario(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))
	ctx := context.Background()
	events := fx.expectPublish(nil)

	outcome := fx.service.Submit(ctx, aliceInput())
	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, usecase.SubmissionAcceptedMessage, outcome.Message)
	assert.Equal(t, entity.StatusPending, outcome.Status)
	assert.NoError(t, outcome.Err())

	stored, err := fx.repo.FindByKey(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.NotEqual(t, "Secr3t!", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "Secr3t!")
	assert.True(t, fx.hasher.Check("Secr3t!", stored.PasswordHash))
	assert.False(t, fx.hasher.Check("secr3t!", stored.PasswordHash))
	assert.Len(t, stored.Secret, 64)
	assert.True(t, stored.ExpiresAt.IsZero())

	require.Len(t, *events, 1)
	event := (*events)[0]
	assert.Equal(t, stored.ID.String(), event.RegistrationID)
	assert.Equal(t, "a@x.com", event.Email)
	assert.Equal(t, stored.Secret, event.Token)
	assert.NotContains(t, outcome.Message, stored.Secret)

	wrong := fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: strings.Repeat("0", 64)})
	requireFailure(t, wrong, domainerrors.ErrInvalidToken)
	assert.Equal(t, entity.StatusPending, wrong.Status)

	confirmed := fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: event.Token})
	require.True(t, confirmed.Success, confirmed.Message)
	assert.Equal(t, entity.StatusConfirmed, confirmed.Status)
	assert.Equal(t, usecase.ConfirmedMessage, confirmed.Message)

	again := fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: event.Token})
	requireFailure(t, again, domainerrors.ErrAlreadyFinalized)
	assert.Equal(t, entity.StatusConfirmed, again.Status)

	stored, err = fx.repo.FindByKey(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, stored.Status)
	assert.Equal(t, 2, stored.ConfirmAttempts)
}

func TestRegistrationService_Submit_Duplicate(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))
	ctx := context.Background()
	events := fx.expectPublish(nil)

	require.True(t, fx.service.Submit(ctx, aliceInput()).Success)

	sameUsername := aliceInput()
	sameUsername.Email = "other@x.com"
	requireFailure(t, fx.service.Submit(ctx, sameUsername), domainerrors.ErrDuplicateRegistration)

	sameEmail := aliceInput()
	sameEmail.Username = "alice2"
	outcome := fx.service.Submit(ctx, sameEmail)
	requireFailure(t, outcome, domainerrors.ErrDuplicateRegistration)
	assert.Contains(t, outcome.Message, "already registered")

	assert.Len(t, *events, 1)
}

func TestRegistrationService_Submit_ValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*usecase.SubmitInput)
		wantField string
	}{
		{name: "missing username", mutate: func(in *usecase.SubmitInput) { in.Username = "" }, wantField: "username"},
		{name: "blank first name", mutate: func(in *usecase.SubmitInput) { in.FirstName = "   " }, wantField: "firstname"},
		{name: "missing last name", mutate: func(in *usecase.SubmitInput) { in.LastName = "" }, wantField: "lastname"},
		{name: "missing email", mutate: func(in *usecase.SubmitInput) { in.Email = "" }, wantField: "email"},
		{name: "missing website", mutate: func(in *usecase.SubmitInput) { in.Website = "\t" }, wantField: "website"},
		{name: "missing password", mutate: func(in *usecase.SubmitInput) { in.Password = " " }, wantField: "password"},
		{name: "first of several", mutate: func(in *usecase.SubmitInput) { in.Email = ""; in.Password = "" }, wantField: "email"},
		{name: "everything missing", mutate: func(in *usecase.SubmitInput) { *in = usecase.SubmitInput{} }, wantField: "username"},
		{name: "attribute too long", mutate: func(in *usecase.SubmitInput) { in.Website = strings.Repeat("w", 256) }, wantField: "website"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No publisher expectations: nothing may be dispatched.
			fx := newRegistrationFixtures(t, newTestConfig(0, 0))
			input := aliceInput()
			tt.mutate(input)

			outcome := fx.service.Submit(context.Background(), input)
			requireFailure(t, outcome, domainerrors.ErrValidationFailure)
			assert.Equal(t, tt.wantField, outcome.Field)
			assert.Contains(t, outcome.Message, tt.wantField)

			_, err := fx.repo.FindByKey(context.Background(), "alice")
			assert.Error(t, err, "no request may be persisted")
		})
	}
}

func TestRegistrationService_Submit_TrimsAttributes(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))
	fx.expectPublish(nil)

	input := aliceInput()
	input.Username = "  alice "
	input.Password = " Secr3t! "
	require.True(t, fx.service.Submit(context.Background(), input).Success)

	stored, err := fx.repo.FindByKey(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, fx.hasher.Check(" Secr3t! ", stored.PasswordHash), "password whitespace is preserved")
}

func TestRegistrationService_Submit_PasswordPolicy(t *testing.T) {
	cfg := newTestConfig(0, 0)
	cfg.PasswordStrength = &config.PasswordStrengthConfig{MinLength: 12}
	fx := newRegistrationFixtures(t, cfg)

	outcome := fx.service.Submit(context.Background(), aliceInput())
	requireFailure(t, outcome, domainerrors.ErrValidationFailure)
	assert.Equal(t, "password", outcome.Field)
	assert.Contains(t, outcome.Message, "at least 12 characters")
}

func TestRegistrationService_Submit_SetsDeadline(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(24*time.Hour, 0))
	events := fx.expectPublish(nil)

	require.True(t, fx.service.Submit(context.Background(), aliceInput()).Success)

	stored, err := fx.repo.FindByKey(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, fx.clock.Add(24*time.Hour), stored.ExpiresAt)
	require.Len(t, *events, 1)
	assert.Equal(t, stored.ExpiresAt, (*events)[0].ExpiresAt)
}

func TestRegistrationService_Submit_DispatchFailureKeepsRequest(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))
	fx.expectPublish(errors.New("topic unavailable"))

	outcome := fx.service.Submit(context.Background(), aliceInput())
	require.True(t, outcome.Success, outcome.Message)

	stored, err := fx.repo.FindByKey(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestRegistrationService_Confirm_Validation(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))

	outcome := fx.service.Confirm(context.Background(), &usecase.ConfirmInput{Username: "alice"})
	requireFailure(t, outcome, domainerrors.ErrValidationFailure)
	assert.Equal(t, "token", outcome.Field)

	outcome = fx.service.Confirm(context.Background(), nil)
	requireFailure(t, outcome, domainerrors.ErrValidationFailure)
	assert.Equal(t, "username", outcome.Field)
}

func TestRegistrationService_Confirm_UnknownRequest(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))

	outcome := fx.service.Confirm(context.Background(), &usecase.ConfirmInput{Username: "nobody", Token: "abc"})
	requireFailure(t, outcome, domainerrors.ErrUnknownRequest)
	assert.Empty(t, outcome.Status)
}

func TestRegistrationService_Confirm_Expired(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(time.Hour, 0))
	ctx := context.Background()
	events := fx.expectPublish(nil)
	require.True(t, fx.service.Submit(ctx, aliceInput()).Success)

	fx.clock = fx.clock.Add(2 * time.Hour)
	outcome := fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: (*events)[0].Token})
	requireFailure(t, outcome, domainerrors.ErrRequestExpired)
	assert.Equal(t, entity.StatusPending, outcome.Status)

	rejected, err := fx.service.ExpireStale(ctx, fx.clock)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rejected)

	outcome = fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: (*events)[0].Token})
	requireFailure(t, outcome, domainerrors.ErrAlreadyFinalized)
	assert.Equal(t, entity.StatusRejected, outcome.Status)
}

func TestRegistrationService_Confirm_TooManyAttempts(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 3))
	ctx := context.Background()
	events := fx.expectPublish(nil)
	require.True(t, fx.service.Submit(ctx, aliceInput()).Success)

	for range 3 {
		requireFailure(t, fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: "guess"}), domainerrors.ErrInvalidToken)
	}

	outcome := fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: (*events)[0].Token})
	requireFailure(t, outcome, domainerrors.ErrTooManyAttempts)
	assert.Equal(t, entity.StatusPending, outcome.Status)
}

func TestRegistrationService_Confirm_ConcurrentGuessesRespectCap(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 5))
	ctx := context.Background()
	events := fx.expectPublish(nil)
	require.True(t, fx.service.Submit(ctx, aliceInput()).Success)

	const callers = 200
	outcomes := make([]*usecase.Outcome, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: strings.Repeat("0", 64)})
		}(i)
	}
	wg.Wait()

	compared := 0
	for _, outcome := range outcomes {
		require.False(t, outcome.Success)
		if errors.Is(outcome.Err(), domainerrors.ErrInvalidToken) {
			compared++

			continue
		}
		assert.ErrorIs(t, outcome.Err(), domainerrors.ErrTooManyAttempts)
		assert.Equal(t, entity.StatusPending, outcome.Status)
	}
	assert.Equal(t, 5, compared)

	stored, err := fx.repo.FindByKey(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.ConfirmAttempts)

	requireFailure(t, fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: (*events)[0].Token}), domainerrors.ErrTooManyAttempts)
}

func TestRegistrationService_Confirm_ConcurrentSingleWinner(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))
	ctx := context.Background()
	events := fx.expectPublish(nil)
	require.True(t, fx.service.Submit(ctx, aliceInput()).Success)
	token := (*events)[0].Token

	const callers = 24
	outcomes := make([]*usecase.Outcome, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: token})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, outcome := range outcomes {
		if outcome.Success {
			winners++

			continue
		}
		assert.ErrorIs(t, outcome.Err(), domainerrors.ErrAlreadyFinalized)
		assert.Equal(t, entity.StatusConfirmed, outcome.Status)
	}
	assert.Equal(t, 1, winners)
}

func TestRegistrationService_Reject(t *testing.T) {
	fx := newRegistrationFixtures(t, newTestConfig(0, 0))
	ctx := context.Background()
	events := fx.expectPublish(nil)
	require.True(t, fx.service.Submit(ctx, aliceInput()).Success)

	outcome := fx.service.Reject(ctx, "alice")
	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, entity.StatusRejected, outcome.Status)

	requireFailure(t, fx.service.Reject(ctx, "alice"), domainerrors.ErrAlreadyFinalized)
	requireFailure(t, fx.service.Reject(ctx, "nobody"), domainerrors.ErrUnknownRequest)
	requireFailure(t, fx.service.Reject(ctx, " "), domainerrors.ErrValidationFailure)

	confirm := fx.service.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: (*events)[0].Token})
	requireFailure(t, confirm, domainerrors.ErrAlreadyFinalized)
	assert.Equal(t, entity.StatusRejected, confirm.Status)
}
