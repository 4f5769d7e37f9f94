package usecase_test

import (
	"context"
	"testing"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/session"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/internal/validation"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/password"
	"job-portal-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// Map-backed fakes for the profile stores, enough to observe commits and
// round-trip documents.
type fakeEmployerRepo struct {
	docs map[string]domain.EmployerProfile
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{docs: make(map[string]domain.EmployerProfile)}
}

func (f *fakeEmployerRepo) GetByAccountID(_ context.Context, accountID string) (*domain.EmployerProfile, error) {
	doc, ok := f.docs[accountID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeEmployerRepo) Upsert(_ context.Context, profile *domain.EmployerProfile) error {
	f.docs[profile.AccountID] = *profile
	return nil
}

type fakeCandidateRepo struct {
	docs map[string]domain.CandidateProfile
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{docs: make(map[string]domain.CandidateProfile)}
}

func (f *fakeCandidateRepo) GetByAccountID(_ context.Context, accountID string) (*domain.CandidateProfile, error) {
	doc, ok := f.docs[accountID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeCandidateRepo) Upsert(_ context.Context, profile *domain.CandidateProfile) error {
	f.docs[profile.AccountID] = *profile
	return nil
}

func ownerCtx(accountID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyAccountID, accountID)
}

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

func newAuthFixture(accountRepo domain.AccountRepository) (domain.AuthUsecase, *fakeCandidateRepo, *fakeEmployerRepo) {
	candidateRepo := newFakeCandidateRepo()
	employerRepo := newFakeEmployerRepo()
	uc := usecase.NewAuthUsecase(
		accountRepo,
		candidateRepo,
		employerRepo,
		session.NewMemoryStore(),
		password.NewHasher(4), // min cost keeps the tests fast
		token.NewCodec("test-secret", time.Hour),
		validator.New(),
		6,
	)
	return uc, candidateRepo, employerRepo
}

func TestRegister(t *testing.T) {
	t.Run("rejects a weak password before touching the store", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc, _, _ := newAuthFixture(mockRepo)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "a@b.com",
			Password: "short",
			Kind:     domain.KindCandidate,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects an unknown account kind", func(t *testing.T) {
		uc, _, _ := newAuthFixture(new(MockAccountRepo))
		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "a@b.com",
			Password: "secret1",
			Kind:     "wizard",
		})
		assert.Error(t, err)
	})

	t.Run("surfaces EmailTaken from the unique constraint", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("An account with this email already exists"))
		uc, _, _ := newAuthFixture(mockRepo)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "taken@co.com",
			Password: "secret1",
			Kind:     domain.KindCandidate,
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("creates account with hashed password and owned profile", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		var created *domain.Account
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).Return(nil).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Account)
		})
		uc, candidateRepo, _ := newAuthFixture(mockRepo)

		account, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:     "  Jane@Example.COM ",
			Password:  "secret1",
			Kind:      domain.KindCandidate,
			FirstName: "Jane",
			LastName:  "Doe",
		})
		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", account.Email)
		assert.NotEqual(t, "secret1", created.PasswordHash)
		assert.True(t, password.NewHasher(4).Verify(created.PasswordHash, "secret1"))

		profile, err := candidateRepo.GetByAccountID(context.Background(), account.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Jane", profile.FirstName)
		assert.Equal(t, "Doe", profile.LastName)
	})

	t.Run("seeds the employer profile from registration fields", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc, _, employerRepo := newAuthFixture(mockRepo)

		account, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:                  "hr@acme.com",
			Password:               "secret1",
			Kind:                   domain.KindEmployer,
			CompanyName:            "Acme Corp",
			HiringManagerFirstName: "Jane",
		})
		assert.NoError(t, err)

		profile, err := employerRepo.GetByAccountID(context.Background(), account.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Acme Corp", profile.CompanyName)
		assert.Equal(t, "Jane", profile.HiringManagerFirstName)
		assert.NotNil(t, profile.Projects)
		assert.NotNil(t, profile.ProjectSponsors)
	})
}

func TestAuthenticate(t *testing.T) {
	hasher := password.NewHasher(4)
	hash, _ := hasher.Hash("secret1")
	stored := &domain.Account{ID: "acct-1", Email: "jane@acme.com", PasswordHash: hash, Kind: domain.KindEmployer}

	t.Run("unknown email fails with the generic message", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@acme.com").Return(nil, domain.ErrNotFound)
		uc, _, _ := newAuthFixture(mockRepo)

		_, _, err := uc.Authenticate(context.Background(), "nobody@acme.com", "secret1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("wrong password fails with the same generic message", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		mockRepo.On("GetByEmail", mock.Anything, "jane@acme.com").Return(stored, nil)
		uc, _, _ := newAuthFixture(mockRepo)

		_, _, err := uc.Authenticate(context.Background(), "jane@acme.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("session lifecycle: login, me, logout, revoked", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		mockRepo.On("GetByEmail", mock.Anything, "jane@acme.com").Return(stored, nil)
		mockRepo.On("GetByID", mock.Anything, "acct-1").Return(stored, nil)
		uc, _, _ := newAuthFixture(mockRepo)

		account, tokenString, err := uc.Authenticate(context.Background(), "Jane@Acme.com", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, "acct-1", account.ID)
		assert.NotEmpty(t, tokenString)

		current, err := uc.CurrentUser(context.Background(), tokenString)
		assert.NoError(t, err)
		assert.Equal(t, "jane@acme.com", current.Email)

		assert.NoError(t, uc.Logout(context.Background(), tokenString))

		// A signed but revoked token no longer resolves
		_, err = uc.CurrentUser(context.Background(), tokenString)
		assert.Error(t, err)

		// Logout is idempotent, for garbage tokens too
		assert.NoError(t, uc.Logout(context.Background(), tokenString))
		assert.NoError(t, uc.Logout(context.Background(), "not-a-token"))
	})
}

func TestEmployerOwnership(t *testing.T) {
	uc := usecase.NewEmployerUsecase(newFakeEmployerRepo())

	t.Run("fails when context account does not match argument", func(t *testing.T) {
		_, err := uc.GetProfile(ownerCtx("acct-1"), "acct-2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only access your own profile")
	})

	t.Run("fails safely when context has no account", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "acct-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})

	t.Run("forces the account id from context on commit", func(t *testing.T) {
		repo := newFakeEmployerRepo()
		uc := usecase.NewEmployerUsecase(repo)

		profile := completeEmployerProfile()
		profile.AccountID = "someone-else"
		updated, err := uc.UpdateProfile(ownerCtx("acct-1"), "acct-1", profile)
		assert.NoError(t, err)
		assert.Equal(t, "acct-1", updated.AccountID)
		_, ok := repo.docs["someone-else"]
		assert.False(t, ok)
	})
}

func TestEmployerCommit(t *testing.T) {
	t.Run("never-saved profile loads as the empty document", func(t *testing.T) {
		uc := usecase.NewEmployerUsecase(newFakeEmployerRepo())
		profile, err := uc.GetProfile(ownerCtx("acct-1"), "acct-1")
		assert.NoError(t, err)
		assert.Equal(t, "", profile.CompanyName)
		assert.Equal(t, []string{}, profile.ProjectSponsors)
		assert.Equal(t, []domain.Project{}, profile.Projects)
	})

	t.Run("rejects a missing mandatory field before any write", func(t *testing.T) {
		repo := newFakeEmployerRepo()
		uc := usecase.NewEmployerUsecase(repo)

		profile := completeEmployerProfile()
		profile.CompanyPhone = "  "
		_, err := uc.UpdateProfile(ownerCtx("acct-1"), "acct-1", profile)

		var valErr *validation.Error
		assert.ErrorAs(t, err, &valErr)
		assert.Equal(t, []string{"Company Phone"}, valErr.Result.MissingLabels)
		assert.Equal(t, "companyPhone", valErr.Result.FocusField)
		assert.Empty(t, repo.docs, "nothing may be persisted on validation failure")
	})

	t.Run("commit then load round-trips the whole nested tree", func(t *testing.T) {
		uc := usecase.NewEmployerUsecase(newFakeEmployerRepo())

		profile := completeEmployerProfile()
		profile.AddSponsor("Acme")
		profile.AddProject()
		profile.UpdateProject(0, "projectName", "Apollo")
		profile.UpdateProject(0, "teamSize", "2")
		profile.AddTeamMember(0)
		profile.UpdateTeamMember(0, 0, "firstName", "Jane")
		profile.UpdateTeamMember(0, 0, "role", "Lead")

		committed, err := uc.UpdateProfile(ownerCtx("acct-1"), "acct-1", profile)
		assert.NoError(t, err)

		loaded, err := uc.GetProfile(ownerCtx("acct-1"), "acct-1")
		assert.NoError(t, err)
		assert.Equal(t, committed, loaded)
		assert.Equal(t, "Apollo", loaded.Projects[0].ProjectName)
		assert.Equal(t, "Jane", loaded.Projects[0].TeamMembers[0].FirstName)
	})

	t.Run("commit normalizes duplicate sponsors", func(t *testing.T) {
		uc := usecase.NewEmployerUsecase(newFakeEmployerRepo())

		profile := completeEmployerProfile()
		profile.ProjectSponsors = []string{"Acme", " Acme ", "Globex"}
		committed, err := uc.UpdateProfile(ownerCtx("acct-1"), "acct-1", profile)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Globex"}, committed.ProjectSponsors)
	})
}

func TestCandidateProfile(t *testing.T) {
	validate := validator.New()

	t.Run("configured mandatory set is enforced on commit", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(newFakeCandidateRepo(), validate, []string{"firstName", "lastName"})
		_, err := uc.UpdateProfile(ownerCtx("acct-1"), "acct-1", &domain.CandidateProfile{FirstName: "Jane"})

		var valErr *validation.Error
		assert.ErrorAs(t, err, &valErr)
		assert.Equal(t, []string{"Last Name"}, valErr.Result.MissingLabels)
	})

	t.Run("default configuration enforces nothing", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(newFakeCandidateRepo(), validate, nil)
		committed, err := uc.UpdateProfile(ownerCtx("acct-1"), "acct-1", &domain.CandidateProfile{})
		assert.NoError(t, err)
		assert.Equal(t, []string{}, committed.Skills)
	})

	t.Run("resume reference must be a URL", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(newFakeCandidateRepo(), validate, nil)
		_, err := uc.SetResume(ownerCtx("acct-1"), "acct-1", "not a url")
		assert.Error(t, err)

		updated, err := uc.SetResume(ownerCtx("acct-1"), "acct-1", "https://files.example.com/resume.pdf")
		assert.NoError(t, err)
		assert.Equal(t, "https://files.example.com/resume.pdf", updated.ResumeURL)
	})
}

func TestDashboardSummary(t *testing.T) {
	account := &domain.Account{ID: "acct-1", Email: "hr@acme.com", Kind: domain.KindEmployer}

	t.Run("incomplete employer profile", func(t *testing.T) {
		uc := usecase.NewDashboardUsecase(newFakeCandidateRepo(), newFakeEmployerRepo(), nil)
		summary, err := uc.Summary(context.Background(), account)
		assert.NoError(t, err)
		assert.False(t, summary.ProfileComplete)
		assert.Len(t, summary.MissingFields, 10)
	})

	t.Run("completeness agrees with the commit validator", func(t *testing.T) {
		employerRepo := newFakeEmployerRepo()
		profileUC := usecase.NewEmployerUsecase(employerRepo)
		dashboardUC := usecase.NewDashboardUsecase(newFakeCandidateRepo(), employerRepo, nil)

		profile := completeEmployerProfile()
		profile.AddProject()
		profile.AddSponsor("Acme")
		_, err := profileUC.UpdateProfile(ownerCtx("acct-1"), "acct-1", profile)
		assert.NoError(t, err)

		summary, err := dashboardUC.Summary(context.Background(), account)
		assert.NoError(t, err)
		assert.True(t, summary.ProfileComplete)
		assert.Empty(t, summary.MissingFields)
		assert.Equal(t, 1, summary.ProjectCount)
		assert.Equal(t, 1, summary.SponsorCount)
	})

	t.Run("candidate counts", func(t *testing.T) {
		candidateRepo := newFakeCandidateRepo()
		candidateRepo.docs["acct-2"] = domain.CandidateProfile{
			AccountID:  "acct-2",
			Skills:     []string{"Go", "SQL"},
			Experience: []domain.ExperienceEntry{{Company: "Acme"}},
		}
		uc := usecase.NewDashboardUsecase(candidateRepo, newFakeEmployerRepo(), nil)

		summary, err := uc.Summary(context.Background(), &domain.Account{ID: "acct-2", Kind: domain.KindCandidate})
		assert.NoError(t, err)
		assert.True(t, summary.ProfileComplete)
		assert.Equal(t, 2, summary.SkillCount)
		assert.Equal(t, 1, summary.ExperienceCount)
	})
}

// The end-to-end shape of the employer story: a commit missing one
// mandatory field is rejected with exactly that label, the corrected
// commit lands, and the dashboard then reports the profile complete.
func TestEmployerStory(t *testing.T) {
	employerRepo := newFakeEmployerRepo()
	profileUC := usecase.NewEmployerUsecase(employerRepo)
	dashboardUC := usecase.NewDashboardUsecase(newFakeCandidateRepo(), employerRepo, nil)
	account := &domain.Account{ID: "acct-emp", Email: "e@co.com", Kind: domain.KindEmployer}

	profile := completeEmployerProfile()
	profile.CompanyPhone = ""
	_, err := profileUC.UpdateProfile(ownerCtx(account.ID), account.ID, profile)
	var valErr *validation.Error
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"Company Phone"}, valErr.Result.MissingLabels)

	profile.CompanyPhone = "555-1111"
	_, err = profileUC.UpdateProfile(ownerCtx(account.ID), account.ID, profile)
	assert.NoError(t, err)

	summary, err := dashboardUC.Summary(context.Background(), account)
	assert.NoError(t, err)
	assert.True(t, summary.ProfileComplete)
}
