package validation_test

import (
	"testing"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/validation"

	"github.com/stretchr/testify/assert"
)

func completeEmployerProfile() *domain.EmployerProfile {
	return &domain.EmployerProfile{
		CompanyName:            "Acme Corp",
		HiringManagerFirstName: "Jane",
		HiringManagerLastName:  "Doe",
		HiringManagerPhone:     "555-0100",
		CompanyWebsite:         "https://acme.example.com",
		CompanyPhone:           "555-1111",
		CompanyAddress:         "1 Main St",
		CompanyLocation:        "Springfield, IL",
		Organization:           "Engineering",
		Department:             "Platform",
	}
}

func TestCheckEmployer(t *testing.T) {
	t.Run("complete profile passes", func(t *testing.T) {
		result := validation.CheckEmployer(completeEmployerProfile())
		assert.True(t, result.OK())
		assert.Empty(t, result.MissingLabels)
		assert.Empty(t, result.FocusField)
	})

	t.Run("single missing field yields exactly its label", func(t *testing.T) {
		profile := completeEmployerProfile()
		profile.CompanyPhone = ""
		result := validation.CheckEmployer(profile)
		assert.False(t, result.OK())
		assert.Equal(t, []string{"Company Phone"}, result.MissingLabels)
		assert.Equal(t, "companyPhone", result.FocusField)
	})

	t.Run("whitespace-only counts as empty", func(t *testing.T) {
		profile := completeEmployerProfile()
		profile.Organization = "   "
		result := validation.CheckEmployer(profile)
		assert.Equal(t, []string{"Organization"}, result.MissingLabels)
	})

	t.Run("empty profile reports all ten labels in order", func(t *testing.T) {
		result := validation.CheckEmployer(&domain.EmployerProfile{})
		assert.Equal(t, []string{
			"Company Name",
			"Hiring Manager First Name",
			"Hiring Manager Last Name",
			"Hiring Manager Phone",
			"Company Website",
			"Company Phone",
			"Company Address",
			"Company Location",
			"Organization",
			"Department",
		}, result.MissingLabels)
		assert.Equal(t, "companyName", result.FocusField)
	})

	t.Run("optional fields never appear", func(t *testing.T) {
		profile := completeEmployerProfile()
		profile.CostCenter = ""
		profile.Address = ""
		result := validation.CheckEmployer(profile)
		assert.True(t, result.OK())
	})
}

func TestCheckCandidate(t *testing.T) {
	t.Run("empty mandatory set always passes", func(t *testing.T) {
		result := validation.CheckCandidate(&domain.CandidateProfile{}, nil)
		assert.True(t, result.OK())
	})

	t.Run("configured fields are enforced", func(t *testing.T) {
		profile := &domain.CandidateProfile{FirstName: "Jane"}
		result := validation.CheckCandidate(profile, []string{"firstName", "lastName", "phone"})
		assert.False(t, result.OK())
		assert.Equal(t, []string{"Last Name", "Phone"}, result.MissingLabels)
		assert.Equal(t, "lastName", result.FocusField)
	})

	t.Run("unknown field names are skipped", func(t *testing.T) {
		result := validation.CheckCandidate(&domain.CandidateProfile{}, []string{"favouriteColor"})
		assert.True(t, result.OK())
	})
}
