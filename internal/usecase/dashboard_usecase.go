package usecase

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/validation"
	"job-portal-backend/pkg/apperror"
)

type dashboardUsecase struct {
	candidateRepo      domain.CandidateRepository
	employerRepo       domain.EmployerRepository
	candidateMandatory []string
}

func NewDashboardUsecase(candidateRepo domain.CandidateRepository, employerRepo domain.EmployerRepository, candidateMandatory []string) domain.DashboardUsecase {
	return &dashboardUsecase{
		candidateRepo:      candidateRepo,
		employerRepo:       employerRepo,
		candidateMandatory: candidateMandatory,
	}
}

// Summary derives the dashboard view. Completeness reuses the exact
// predicate the commit path enforces, so the dashboard can never disagree
// with the validator about what "complete" means.
func (u *dashboardUsecase) Summary(ctx context.Context, account *domain.Account) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		Email: account.Email,
		Kind:  account.Kind,
	}

	switch account.Kind {
	case domain.KindEmployer:
		profile, err := u.employerRepo.GetByAccountID(ctx, account.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.Internal(err)
			}
			profile = &domain.EmployerProfile{AccountID: account.ID}
			profile.Normalize()
		}
		result := validation.CheckEmployer(profile)
		summary.ProfileComplete = result.OK()
		summary.MissingFields = result.MissingLabels
		summary.ProjectCount = len(profile.Projects)
		summary.SponsorCount = len(profile.ProjectSponsors)

	case domain.KindCandidate:
		profile, err := u.candidateRepo.GetByAccountID(ctx, account.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.Internal(err)
			}
			profile = &domain.CandidateProfile{AccountID: account.ID}
			profile.Normalize()
		}
		result := validation.CheckCandidate(profile, u.candidateMandatory)
		summary.ProfileComplete = result.OK()
		summary.MissingFields = result.MissingLabels
		summary.SkillCount = len(profile.Skills)
		summary.ExperienceCount = len(profile.Experience)

	default:
		return nil, apperror.Forbidden("Unknown account kind")
	}

	return summary, nil
}
