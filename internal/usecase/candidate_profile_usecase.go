package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/validation"
	"job-portal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo      domain.CandidateRepository
	validate  *validator.Validate
	mandatory []string
}

// NewCandidateUsecase builds the candidate profile usecase. mandatory is
// the configured candidate mandatory-field set; production runs with none.
func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate, mandatory []string) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, validate: validate, mandatory: mandatory}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, accountID string) (*domain.CandidateProfile, error) {
	if err := requireOwner(ctx, accountID); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			empty := &domain.CandidateProfile{AccountID: accountID}
			empty.Normalize()
			return empty, nil
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, accountID string, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	if err := requireOwner(ctx, accountID); err != nil {
		return nil, err
	}
	profile.AccountID = accountID

	if result := validation.CheckCandidate(profile, u.mandatory); !result.OK() {
		return nil, &validation.Error{Result: result}
	}

	profile.Normalize()
	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// SetResume stores an opaque reference to an uploaded resume document. The
// document itself lives with an external collaborator; only the reference
// is kept on the profile.
func (u *candidateUsecase) SetResume(ctx context.Context, accountID string, resumeURL string) (*domain.CandidateProfile, error) {
	if err := requireOwner(ctx, accountID); err != nil {
		return nil, err
	}

	resumeURL = strings.TrimSpace(resumeURL)
	if err := u.validate.Var(resumeURL, "omitempty,url"); err != nil {
		return nil, apperror.BadRequest("Resume reference must be a valid URL")
	}

	profile, err := u.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	profile.ResumeURL = resumeURL
	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
