package usecase

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/validation"
	"job-portal-backend/pkg/apperror"
)

type employerUsecase struct {
	repo domain.EmployerRepository
}

func NewEmployerUsecase(repo domain.EmployerRepository) domain.EmployerUsecase {
	return &employerUsecase{repo: repo}
}

func (u *employerUsecase) GetProfile(ctx context.Context, accountID string) (*domain.EmployerProfile, error) {
	if err := requireOwner(ctx, accountID); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// New employers get the empty document, not an error.
			empty := &domain.EmployerProfile{AccountID: accountID}
			empty.Normalize()
			return empty, nil
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile commits a full working copy. Mandatory fields are checked
// before any write; on success the whole document is replaced atomically
// and the canonical stored copy is returned for the client to reconcile
// against.
func (u *employerUsecase) UpdateProfile(ctx context.Context, accountID string, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	if err := requireOwner(ctx, accountID); err != nil {
		return nil, err
	}
	// Force ownership from the session context (IDOR prevention).
	profile.AccountID = accountID

	if result := validation.CheckEmployer(profile); !result.OK() {
		return nil, &validation.Error{Result: result}
	}

	profile.Normalize()
	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// requireOwner verifies the session context matches the addressed account.
func requireOwner(ctx context.Context, accountID string) error {
	ctxAccountID, ok := ctx.Value(domain.KeyAccountID).(string)
	if !ok || ctxAccountID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxAccountID != accountID {
		return apperror.Forbidden("You can only access your own profile")
	}
	return nil
}
