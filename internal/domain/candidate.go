package domain

import (
	"context"
	"time"
)

type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    string `json:"startYear"`
	EndYear      string `json:"endYear"`
}

// CandidateProfile is the candidate-kind profile document, owned 1:1 by
// its account. Absent scalars default to empty strings and absent
// collections to empty slices; a profile that was never saved still loads
// as the empty document.
type CandidateProfile struct {
	AccountID          string            `json:"account_id"`
	FirstName          string            `json:"firstName"`
	LastName           string            `json:"lastName"`
	Phone              string            `json:"phone"`
	Address            string            `json:"address"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	ZipCode            string            `json:"zipCode"`
	PreviousExperience string            `json:"previousExperience"`
	Bio                string            `json:"bio"`
	Skills             []string          `json:"skills"`
	Experience         []ExperienceEntry `json:"experience"`
	Education          []EducationEntry  `json:"education"`
	ResumeURL          string            `json:"resumeUrl"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// Normalize guarantees non-nil collections so the document round-trips as
// empty sequences rather than nulls.
func (p *CandidateProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
}

type CandidateRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*CandidateProfile, error)
	// Upsert replaces the whole document in one statement.
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, accountID string) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, accountID string, profile *CandidateProfile) (*CandidateProfile, error)
	SetResume(ctx context.Context, accountID string, resumeURL string) (*CandidateProfile, error)
}
