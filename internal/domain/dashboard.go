package domain

import "context"

// DashboardSummary is the read-only view the dashboard renders. It has no
// mutation authority; completeness is derived from the same mandatory-field
// predicate the profile commit path enforces.
type DashboardSummary struct {
	Email           string      `json:"email"`
	Kind            AccountKind `json:"kind"`
	ProfileComplete bool        `json:"profile_complete"`
	MissingFields   []string    `json:"missing_fields"`
	ProjectCount    int         `json:"project_count,omitempty"`
	SponsorCount    int         `json:"sponsor_count,omitempty"`
	SkillCount      int         `json:"skill_count,omitempty"`
	ExperienceCount int         `json:"experience_count,omitempty"`
}

type DashboardUsecase interface {
	Summary(ctx context.Context, account *Account) (*DashboardSummary, error)
}
