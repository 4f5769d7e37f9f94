package domain

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const (
	CommunicationModeEmail = "Email"
	CommunicationModePhone = "Phone"
)

type TeamMember struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// Project has no identity outside its position in the parent profile's
// sequence; removing one shifts the indices of those after it.
type Project struct {
	ProjectName string       `json:"projectName"`
	TeamSize    int          `json:"teamSize"`
	TeamMembers []TeamMember `json:"teamMembers"`
}

// EmployerProfile is the employer-kind profile document, owned 1:1 by its
// account. Edits happen on a client-held working copy; nothing below the
// account row is persisted until the whole document is committed.
type EmployerProfile struct {
	AccountID                  string    `json:"account_id"`
	CompanyName                string    `json:"companyName"`
	HiringManagerFirstName     string    `json:"hiringManagerFirstName"`
	HiringManagerLastName      string    `json:"hiringManagerLastName"`
	HiringManagerPhone         string    `json:"hiringManagerPhone"`
	Address                    string    `json:"address"`
	CompanyWebsite             string    `json:"companyWebsite"`
	CompanyPhone               string    `json:"companyPhone"`
	CompanyAddress             string    `json:"companyAddress"`
	CompanyLocation            string    `json:"companyLocation"`
	Organization               string    `json:"organization"`
	CostCenter                 string    `json:"costCenter"`
	Department                 string    `json:"department"`
	PreferredCommunicationMode string    `json:"preferredCommunicationMode"`
	ProjectSponsors            []string  `json:"projectSponsors"`
	Projects                   []Project `json:"projects"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// AddSponsor appends a sponsor name. Empty input (after trimming) and
// exact-match duplicates are no-ops, so repeated adds stay idempotent.
func (p *EmployerProfile) AddSponsor(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, existing := range p.ProjectSponsors {
		if existing == name {
			return
		}
	}
	p.ProjectSponsors = append(p.ProjectSponsors, name)
}

// RemoveSponsor removes every exact-match occurrence.
func (p *EmployerProfile) RemoveSponsor(name string) {
	kept := p.ProjectSponsors[:0]
	for _, existing := range p.ProjectSponsors {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	p.ProjectSponsors = kept
}

// AddProject appends an empty project.
func (p *EmployerProfile) AddProject() {
	p.Projects = append(p.Projects, Project{TeamMembers: []TeamMember{}})
}

// UpdateProject applies a single-field edit at the given position.
// Unknown fields are ignored, matching the form's field-by-field editing.
func (p *EmployerProfile) UpdateProject(index int, field, value string) error {
	if index < 0 || index >= len(p.Projects) {
		return ErrIndexOutOfRange
	}
	switch field {
	case "projectName":
		p.Projects[index].ProjectName = value
	case "teamSize":
		size, err := strconv.Atoi(value)
		if err != nil || size < 0 {
			size = 0
		}
		p.Projects[index].TeamSize = size
	}
	return nil
}

func (p *EmployerProfile) RemoveProject(index int) error {
	if index < 0 || index >= len(p.Projects) {
		return ErrIndexOutOfRange
	}
	p.Projects = append(p.Projects[:index], p.Projects[index+1:]...)
	return nil
}

// AddTeamMember appends an empty member to the target project, creating
// the member collection if it was never initialized.
func (p *EmployerProfile) AddTeamMember(projectIndex int) error {
	if projectIndex < 0 || projectIndex >= len(p.Projects) {
		return ErrIndexOutOfRange
	}
	if p.Projects[projectIndex].TeamMembers == nil {
		p.Projects[projectIndex].TeamMembers = []TeamMember{}
	}
	p.Projects[projectIndex].TeamMembers = append(p.Projects[projectIndex].TeamMembers, TeamMember{})
	return nil
}

// UpdateTeamMember edits one member field. Both indices are validated
// independently; a miss on either leaves every sibling entry untouched.
func (p *EmployerProfile) UpdateTeamMember(projectIndex, memberIndex int, field, value string) error {
	if projectIndex < 0 || projectIndex >= len(p.Projects) {
		return ErrIndexOutOfRange
	}
	members := p.Projects[projectIndex].TeamMembers
	if memberIndex < 0 || memberIndex >= len(members) {
		return ErrIndexOutOfRange
	}
	switch field {
	case "firstName":
		members[memberIndex].FirstName = value
	case "lastName":
		members[memberIndex].LastName = value
	case "email":
		members[memberIndex].Email = value
	case "phone":
		members[memberIndex].Phone = value
	case "role":
		members[memberIndex].Role = value
	}
	return nil
}

func (p *EmployerProfile) RemoveTeamMember(projectIndex, memberIndex int) error {
	if projectIndex < 0 || projectIndex >= len(p.Projects) {
		return ErrIndexOutOfRange
	}
	members := p.Projects[projectIndex].TeamMembers
	if memberIndex < 0 || memberIndex >= len(members) {
		return ErrIndexOutOfRange
	}
	p.Projects[projectIndex].TeamMembers = append(members[:memberIndex], members[memberIndex+1:]...)
	return nil
}

// Normalize rebuilds sponsor entries through AddSponsor (trim + dedupe),
// clamps team sizes, defaults the communication mode and guarantees
// non-nil collections before the document is committed.
func (p *EmployerProfile) Normalize() {
	sponsors := p.ProjectSponsors
	p.ProjectSponsors = []string{}
	for _, sponsor := range sponsors {
		p.AddSponsor(sponsor)
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	for i := range p.Projects {
		if p.Projects[i].TeamSize < 0 {
			p.Projects[i].TeamSize = 0
		}
		if p.Projects[i].TeamMembers == nil {
			p.Projects[i].TeamMembers = []TeamMember{}
		}
	}
	if p.PreferredCommunicationMode != CommunicationModePhone {
		p.PreferredCommunicationMode = CommunicationModeEmail
	}
}

type EmployerRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*EmployerProfile, error)
	// Upsert replaces the whole document, nested tree included, in one
	// statement. Concurrent commits from two sessions of the same account
	// are last-write-wins.
	Upsert(ctx context.Context, profile *EmployerProfile) error
}

type EmployerUsecase interface {
	GetProfile(ctx context.Context, accountID string) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, accountID string, profile *EmployerProfile) (*EmployerProfile, error)
}
