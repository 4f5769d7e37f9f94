// Package validation holds the mandatory-field completeness check shared by
// the profile commit path and the dashboard, so the two can never disagree.
package validation

import (
	"strings"

	"job-portal-backend/internal/domain"
)

// Result lists the failing fields of a completeness check, in declaration
// order. FocusField names the first failing field so the UI can focus it.
type Result struct {
	MissingLabels []string `json:"fields"`
	FocusField    string   `json:"focus,omitempty"`
}

// OK reports whether every mandatory field passed.
func (r *Result) OK() bool {
	return len(r.MissingLabels) == 0
}

type employerField struct {
	Name  string
	Label string
	Get   func(*domain.EmployerProfile) string
}

// employerMandatory is the authoritative employer mandatory set. Order
// matters: failure labels are reported in this order and the first failure
// becomes the focus field.
var employerMandatory = []employerField{
	{"companyName", "Company Name", func(p *domain.EmployerProfile) string { return p.CompanyName }},
	{"hiringManagerFirstName", "Hiring Manager First Name", func(p *domain.EmployerProfile) string { return p.HiringManagerFirstName }},
	{"hiringManagerLastName", "Hiring Manager Last Name", func(p *domain.EmployerProfile) string { return p.HiringManagerLastName }},
	{"hiringManagerPhone", "Hiring Manager Phone", func(p *domain.EmployerProfile) string { return p.HiringManagerPhone }},
	{"companyWebsite", "Company Website", func(p *domain.EmployerProfile) string { return p.CompanyWebsite }},
	{"companyPhone", "Company Phone", func(p *domain.EmployerProfile) string { return p.CompanyPhone }},
	{"companyAddress", "Company Address", func(p *domain.EmployerProfile) string { return p.CompanyAddress }},
	{"companyLocation", "Company Location", func(p *domain.EmployerProfile) string { return p.CompanyLocation }},
	{"organization", "Organization", func(p *domain.EmployerProfile) string { return p.Organization }},
	{"department", "Department", func(p *domain.EmployerProfile) string { return p.Department }},
}

// CheckEmployer returns the mandatory fields that are empty after trimming.
func CheckEmployer(profile *domain.EmployerProfile) *Result {
	result := &Result{MissingLabels: []string{}}
	for _, field := range employerMandatory {
		if strings.TrimSpace(field.Get(profile)) != "" {
			continue
		}
		result.MissingLabels = append(result.MissingLabels, field.Label)
		if result.FocusField == "" {
			result.FocusField = field.Name
		}
	}
	return result
}

type candidateField struct {
	Label string
	Get   func(*domain.CandidateProfile) string
}

// candidateFields maps the configurable candidate mandatory-field names to
// their labels and accessors. Production enforces none of these; the set
// comes from configuration.
var candidateFields = map[string]candidateField{
	"firstName": {"First Name", func(p *domain.CandidateProfile) string { return p.FirstName }},
	"lastName":  {"Last Name", func(p *domain.CandidateProfile) string { return p.LastName }},
	"phone":     {"Phone", func(p *domain.CandidateProfile) string { return p.Phone }},
	"address":   {"Address", func(p *domain.CandidateProfile) string { return p.Address }},
	"city":      {"City", func(p *domain.CandidateProfile) string { return p.City }},
	"state":     {"State", func(p *domain.CandidateProfile) string { return p.State }},
	"zipCode":   {"Zip Code", func(p *domain.CandidateProfile) string { return p.ZipCode }},
	"bio":       {"Bio", func(p *domain.CandidateProfile) string { return p.Bio }},
}

// CheckCandidate checks the configured mandatory set against a candidate
// profile. Unknown field names are skipped.
func CheckCandidate(profile *domain.CandidateProfile, mandatory []string) *Result {
	result := &Result{MissingLabels: []string{}}
	for _, name := range mandatory {
		field, known := candidateFields[name]
		if !known {
			continue
		}
		if strings.TrimSpace(field.Get(profile)) != "" {
			continue
		}
		result.MissingLabels = append(result.MissingLabels, field.Label)
		if result.FocusField == "" {
			result.FocusField = name
		}
	}
	return result
}

// Error is returned when a commit is rejected for missing mandatory
// fields. It carries the structured result so the transport layer can
// return the label list and focus directive to the client.
type Error struct {
	Result *Result
}

func (e *Error) Error() string {
	return "Please fill in all required fields: " + strings.Join(e.Result.MissingLabels, ", ")
}
