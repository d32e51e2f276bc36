// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"registrar/config"
	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"
	"registrar/internal/domain/service"
	"registrar/internal/usecase"
	"registrar/internal/validation"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const outcomeOK = "OK"

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	repo        repository.RegistrationRepository
	hasher      service.PasswordHasher
	policy      service.PasswordPolicy
	secrets     service.SecretGenerator
	publisher   service.EventPublisher
	metrics     service.RegistrationMetrics
	validate    *playground.Validate
	tokenTTL    time.Duration
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	Repo      repository.RegistrationRepository
	Hasher    service.PasswordHasher
	Policy    service.PasswordPolicy
	Secrets   service.SecretGenerator
	Publisher service.EventPublisher
	Metrics   service.RegistrationMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService. It receives all dependencies as interfaces.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	srv := &registrationService{
		repo:      params.Repo,
		hasher:    params.Hasher,
		policy:    params.Policy,
		secrets:   params.Secrets,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		validate:  validation.New(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Registration != nil {
		srv.tokenTTL = params.Config.Registration.TokenTTL
		srv.maxAttempts = params.Config.Registration.MaxConfirmAttempts
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates, hashes, issues the secret, persists and dispatches. The
// hash and the secret exist before the insert; a failure in either leaves the
// store untouched.
func (srv *registrationService) Submit(ctx context.Context, input *usecase.SubmitInput) *usecase.Outcome {
	outcome := srv.submit(ctx, input)
	srv.metrics.ObserveSubmission(outcomeLabel(outcome))

	return outcome
}

func (srv *registrationService) submit(ctx context.Context, input *usecase.SubmitInput) *usecase.Outcome {
	if input == nil {
		input = &usecase.SubmitInput{}
	}
	in := normalizeSubmission(input)

	if err := srv.validate.Struct(in); err != nil {
		return validationFailure(err)
	}
	if srv.policy != nil {
		if err := srv.policy.Validate(in.Password, in.Username, in.FirstName, in.LastName, in.Email, in.Website); err != nil {
			return failedOutcome(domainerrors.ErrValidationFailure.WithDetails(err.Error()), "password")
		}
	}

	now := srv.now()
	req := &entity.RegistrationRequest{
		ID:        uuid.New(),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Website:   in.Website,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if srv.tokenTTL > 0 {
		req.ExpiresAt = now.Add(srv.tokenTTL)
	}

	hash, err := srv.hasher.Hash(in.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.String("username", req.Username), slog.Any("error", err))

		return failedOutcome(domainerrors.ErrHashingFailure, "")
	}
	req.PasswordHash = hash

	secret, err := srv.secrets.Generate(req.CanonicalAttributes())
	if err != nil {
		srv.log(ctx).Error("Failed to generate confirmation secret", slog.String("username", req.Username), slog.Any("error", err))

		return failedOutcome(domainerrors.ErrTokenGenerationFailure, "")
	}
	req.Secret = secret

	if err := srv.repo.Insert(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicateRegistration) {
			srv.log(ctx).Info("Duplicate registration rejected", slog.String("username", req.Username))

			return failedOutcome(domainerrors.ErrDuplicateRegistration, "")
		}

		return srv.storageFailure(ctx, "insert registration request", err)
	}

	srv.log(ctx).Info("Registration request created",
		slog.String("registration_id", req.ID.String()),
		slog.String("username", req.Username),
	)

	srv.dispatch(ctx, req)

	return &usecase.Outcome{
		Success: true,
		Message: usecase.SubmissionAcceptedMessage,
		Status:  entity.StatusPending,
	}
}

// dispatch never rolls back the insert. A lost event leaves the request
// PENDING until it expires or an administrator rejects it.
func (srv *registrationService) dispatch(ctx context.Context, req *entity.RegistrationRequest) {
	event := &service.ConfirmationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		RegistrationID: req.ID.String(),
		Username:       req.Username,
		FirstName:      req.FirstName,
		Email:          req.Email,
		Token:          req.Secret,
		ExpiresAt:      req.ExpiresAt,
	}

	if err := srv.publisher.PublishConfirmationRequested(ctx, event); err != nil {
		srv.metrics.ObserveDispatch("failed")
		srv.log(ctx).Error("Failed to publish confirmation event",
			slog.String("registration_id", event.RegistrationID),
			slog.Any("error", err),
		)

		return
	}

	srv.metrics.ObserveDispatch("published")
}

// Confirm checks the token in constant time and moves PENDING to CONFIRMED
// through a conditional update, so at most one concurrent caller wins.
func (srv *registrationService) Confirm(ctx context.Context, input *usecase.ConfirmInput) *usecase.Outcome {
	outcome := srv.confirm(ctx, input)
	srv.metrics.ObserveConfirmation(outcomeLabel(outcome))

	return outcome
}

func (srv *registrationService) confirm(ctx context.Context, input *usecase.ConfirmInput) *usecase.Outcome {
	if input == nil {
		input = &usecase.ConfirmInput{}
	}
	in := &usecase.ConfirmInput{
		Username: strings.TrimSpace(input.Username),
		Token:    strings.TrimSpace(input.Token),
	}
	if err := srv.validate.Struct(in); err != nil {
		return validationFailure(err)
	}

	req, outcome := srv.findPending(ctx, in.Username)
	if outcome != nil {
		return outcome
	}

	if req.IsExpired(srv.now()) {
		return withStatus(failedOutcome(domainerrors.ErrRequestExpired, ""), req.Status)
	}

	// The attempt is counted before the comparison so concurrent guesses
	// cannot outrun the cap.
	reserved, err := srv.repo.ReserveConfirmAttempt(ctx, req.Username, srv.maxAttempts)
	if err != nil {
		return srv.storageFailure(ctx, "reserve confirmation attempt", err)
	}
	if !reserved {
		return srv.attemptRefused(ctx, req.Username)
	}

	if subtle.ConstantTimeCompare([]byte(in.Token), []byte(req.Secret)) != 1 {
		srv.log(ctx).Info("Confirmation token mismatch", slog.String("username", req.Username))

		return withStatus(failedOutcome(domainerrors.ErrInvalidToken, ""), req.Status)
	}

	return srv.transition(ctx, req.Username, entity.StatusConfirmed, usecase.ConfirmedMessage)
}

// attemptRefused explains a refused reservation: the request vanished, was
// finalized meanwhile, or has used up its attempts.
func (srv *registrationService) attemptRefused(ctx context.Context, username string) *usecase.Outcome {
	current, outcome := srv.findPending(ctx, username)
	if outcome != nil {
		return outcome
	}

	return withStatus(failedOutcome(domainerrors.ErrTooManyAttempts, ""), current.Status)
}

// Reject is the administrative PENDING -> REJECTED transition.
func (srv *registrationService) Reject(ctx context.Context, username string) *usecase.Outcome {
	outcome := srv.reject(ctx, strings.TrimSpace(username))
	srv.metrics.ObserveRejection(outcomeLabel(outcome))

	return outcome
}

func (srv *registrationService) reject(ctx context.Context, username string) *usecase.Outcome {
	if username == "" {
		return failedOutcome(domainerrors.ErrValidationFailure.WithDetails("username is required"), "username")
	}

	if _, outcome := srv.findPending(ctx, username); outcome != nil {
		return outcome
	}

	return srv.transition(ctx, username, entity.StatusRejected, usecase.RejectedMessage)
}

func (srv *registrationService) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	rejected, err := srv.repo.RejectExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reject expired registrations")
	}

	srv.metrics.ObserveExpired(rejected)
	if rejected > 0 {
		srv.log(ctx).Info("Expired pending registrations rejected", slog.Int64("count", rejected))
	}

	return rejected, nil
}

// findPending returns the request when it is still PENDING, or the outcome
// explaining why it cannot be acted upon.
func (srv *registrationService) findPending(ctx context.Context, username string) (*entity.RegistrationRequest, *usecase.Outcome) {
	req, err := srv.repo.FindByKey(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, failedOutcome(domainerrors.ErrUnknownRequest, "")
		}

		return nil, srv.storageFailure(ctx, "find registration request", err)
	}

	if req.Status != entity.StatusPending {
		return nil, alreadyFinalized(req.Status)
	}

	return req, nil
}

// transition applies PENDING -> next. Losing the compare-and-swap means another
// caller finalized the request first; its status is re-read and reported.
func (srv *registrationService) transition(ctx context.Context, username string, next entity.RegistrationStatus, message string) *usecase.Outcome {
	updated, err := srv.repo.ConditionalUpdateStatus(ctx, username, entity.StatusPending, next)
	if err != nil {
		return srv.storageFailure(ctx, "update registration status", err)
	}

	if !updated {
		current, err := srv.repo.FindByKey(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrRegistrationNotFound) {
				return failedOutcome(domainerrors.ErrUnknownRequest, "")
			}

			return srv.storageFailure(ctx, "find registration request", err)
		}

		return alreadyFinalized(current.Status)
	}

	srv.log(ctx).Info("Registration request finalized", slog.String("username", username), slog.String("status", next.String()))

	return &usecase.Outcome{Success: true, Message: message, Status: next}
}

func (srv *registrationService) storageFailure(ctx context.Context, operation string, err error) *usecase.Outcome {
	srv.log(ctx).Error("Registration storage failure", slog.String("operation", operation), slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failedOutcome(appErr, "")
	}

	return failedOutcome(domainerrors.ErrInternalError, "")
}

func normalizeSubmission(input *usecase.SubmitInput) *usecase.SubmitInput {
	return &usecase.SubmitInput{
		Username:  strings.TrimSpace(input.Username),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Website:   strings.TrimSpace(input.Website),
		// Whitespace is significant in passwords.
		Password: input.Password,
	}
}

func failedOutcome(appErr domainerrors.AppError, field string) *usecase.Outcome {
	return &usecase.Outcome{
		Success: false,
		Message: appErr.Error(),
		Field:   field,
		Failure: appErr,
	}
}

func withStatus(outcome *usecase.Outcome, status entity.RegistrationStatus) *usecase.Outcome {
	outcome.Status = status

	return outcome
}

func validationFailure(err error) *usecase.Outcome {
	field, reason, ok := validation.FirstViolation(err)
	if !ok {
		return failedOutcome(domainerrors.ErrValidationFailure.WithDetails(err.Error()), "")
	}

	return failedOutcome(domainerrors.ErrValidationFailure.WithDetails(reason), field)
}

func alreadyFinalized(status entity.RegistrationStatus) *usecase.Outcome {
	return withStatus(failedOutcome(domainerrors.ErrAlreadyFinalized.WithDetails("status is "+status.String()), ""), status)
}

func outcomeLabel(outcome *usecase.Outcome) string {
	if outcome.Success || outcome.Failure == nil {
		return outcomeOK
	}

	return outcome.Failure.ErrorCode()
}
