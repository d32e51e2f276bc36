package gormstore

import (
	"context"
	"time"

	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"
	"registrar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// registrationRepository implements repository.RegistrationRepository using GORM.
type registrationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRegistrationRepository is the constructor for registrationRepository.
// It returns the repository as a repository.RegistrationRepository interface, adhering to dependency inversion.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Insert relies on the unique indexes; there is no read-before-write.
func (repo *registrationRepository) Insert(ctx context.Context, req *entity.RegistrationRequest) error {
	registrationM := fromRegistrationDomain(req)
	now := repo.now()
	if registrationM.CreatedAt.IsZero() {
		registrationM.CreatedAt = now
	}
	registrationM.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRegistration
		}

		return domainerrors.NewDatabaseExecuteError(errors.WithStack(err), "insert registration request")
	}

	req.CreatedAt = registrationM.CreatedAt
	req.UpdatedAt = registrationM.UpdatedAt

	return nil
}

// FindByKey reads from the primary so a confirmation issued right after
// submission sees the new row even with lagging replicas.
func (repo *registrationRepository) FindByKey(ctx context.Context, username string) (*entity.RegistrationRequest, error) {
	var registrationM model.RegistrationModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("username = ?", username).
		First(&registrationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(errors.WithStack(err), "find registration request")
	}

	return toRegistrationDomain(&registrationM), nil
}

// ConditionalUpdateStatus is a single UPDATE ... WHERE status = expected, so
// concurrent callers cannot both observe the precondition.
func (repo *registrationRepository) ConditionalUpdateStatus(ctx context.Context, username string, expected, next entity.RegistrationStatus) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, errors.Errorf("illegal status transition %s -> %s", expected, next)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("username = ? AND status = ?", username, expected.String()).
		Updates(map[string]any{
			"status":     next.String(),
			"updated_at": repo.now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(errors.WithStack(result.Error), "update registration status")
	}

	return result.RowsAffected == 1, nil
}

// ReserveConfirmAttempt counts an attempt inside the same UPDATE that checks
// the cap, so concurrent guesses cannot overshoot limit.
func (repo *registrationRepository) ReserveConfirmAttempt(ctx context.Context, username string, limit int) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("username = ? AND status = ?", username, entity.StatusPending.String())
	if limit > 0 {
		query = query.Where("confirm_attempts < ?", limit)
	}

	result := query.Updates(map[string]any{
		"confirm_attempts": gorm.Expr("confirm_attempts + 1"),
		"updated_at":       repo.now(),
	})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(errors.WithStack(result.Error), "reserve confirmation attempt")
	}

	return result.RowsAffected == 1, nil
}

func (repo *registrationRepository) RejectExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", entity.StatusPending.String(), now).
		Updates(map[string]any{
			"status":     entity.StatusRejected.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(errors.WithStack(result.Error), "reject expired registrations")
	}

	return result.RowsAffected, nil
}

func fromRegistrationDomain(req *entity.RegistrationRequest) *model.RegistrationModel {
	registrationM := &model.RegistrationModel{
		ID:              req.ID,
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Website:         req.Website,
		PasswordHash:    req.PasswordHash,
		Secret:          req.Secret,
		Status:          req.Status.String(),
		ConfirmAttempts: req.ConfirmAttempts,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
	if !req.ExpiresAt.IsZero() {
		expiresAt := req.ExpiresAt
		registrationM.ExpiresAt = &expiresAt
	}

	return registrationM
}

func toRegistrationDomain(registrationM *model.RegistrationModel) *entity.RegistrationRequest {
	req := &entity.RegistrationRequest{
		ID:              registrationM.ID,
		Username:        registrationM.Username,
		FirstName:       registrationM.FirstName,
		LastName:        registrationM.LastName,
		Email:           registrationM.Email,
		Website:         registrationM.Website,
		PasswordHash:    registrationM.PasswordHash,
		Secret:          registrationM.Secret,
		Status:          entity.RegistrationStatus(registrationM.Status),
		ConfirmAttempts: registrationM.ConfirmAttempts,
		CreatedAt:       registrationM.CreatedAt,
		UpdatedAt:       registrationM.UpdatedAt,
	}
	if registrationM.ExpiresAt != nil {
		req.ExpiresAt = *registrationM.ExpiresAt
	}

	return req
}
