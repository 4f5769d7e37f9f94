package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/password"
	"job-portal-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const invalidCredentialsMsg = "Invalid email or password"

type authUsecase struct {
	accountRepo    domain.AccountRepository
	candidateRepo  domain.CandidateRepository
	employerRepo   domain.EmployerRepository
	sessions       domain.SessionStore
	hasher         *password.Hasher
	tokens         *token.Codec
	validate       *validator.Validate
	minPasswordLen int
}

func NewAuthUsecase(
	accountRepo domain.AccountRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	sessions domain.SessionStore,
	hasher *password.Hasher,
	tokens *token.Codec,
	validate *validator.Validate,
	minPasswordLen int,
) domain.AuthUsecase {
	return &authUsecase{
		accountRepo:    accountRepo,
		candidateRepo:  candidateRepo,
		employerRepo:   employerRepo,
		sessions:       sessions,
		hasher:         hasher,
		tokens:         tokens,
		validate:       validate,
		minPasswordLen: minPasswordLen,
	}
}

// NormalizeEmail applies the storage normalization for emails: trimmed and
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	email := NormalizeEmail(input.Email)
	if err := u.validate.Var(email, "required,email"); err != nil {
		return nil, apperror.BadRequest("A valid email address is required")
	}
	if !input.Kind.Valid() {
		return nil, apperror.BadRequest("Account kind must be candidate or employer")
	}
	if len(input.Password) < u.minPasswordLen {
		return nil, apperror.BadRequest(fmt.Sprintf("Password must be at least %d characters", u.minPasswordLen))
	}

	// The only place a plaintext password enters the system: hash exactly
	// once, before anything is persisted.
	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Kind:         input.Kind,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Email uniqueness is enforced by the DB constraint; the repo maps the
	// unique violation to a 409.
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	// Create the empty owned profile of the matching kind, seeded with the
	// registration-time fields.
	switch input.Kind {
	case domain.KindCandidate:
		profile := &domain.CandidateProfile{
			AccountID: account.ID,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
		}
		profile.Normalize()
		err = u.candidateRepo.Upsert(ctx, profile)
	case domain.KindEmployer:
		profile := &domain.EmployerProfile{
			AccountID:              account.ID,
			CompanyName:            strings.TrimSpace(input.CompanyName),
			HiringManagerFirstName: strings.TrimSpace(input.HiringManagerFirstName),
			HiringManagerLastName:  strings.TrimSpace(input.HiringManagerLastName),
			HiringManagerPhone:     strings.TrimSpace(input.HiringManagerPhone),
		}
		profile.Normalize()
		err = u.employerRepo.Upsert(ctx, profile)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return account, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, email, plain string) (*domain.Account, string, error) {
	account, err := u.accountRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn a bcrypt comparison so the unknown-email path costs the
			// same as a wrong password, then fail with the generic message.
			u.hasher.VerifyDummy(plain)
			return nil, "", apperror.Unauthorized(invalidCredentialsMsg)
		}
		return nil, "", apperror.Internal(err)
	}

	if !u.hasher.Verify(account.PasswordHash, plain) {
		return nil, "", apperror.Unauthorized(invalidCredentialsMsg)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Kind:      account.Kind,
		ExpiresAt: time.Now().Add(u.tokens.TTL()),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, "", apperror.Internal(err)
	}

	tokenString, err := u.tokens.Issue(session.ID, account.ID, string(account.Kind))
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return account, tokenString, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, tokenString string) (*domain.Account, error) {
	session, err := u.resolveSession(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	account, err := u.accountRepo.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Session account no longer exists")
		}
		return nil, apperror.Internal(err)
	}
	return account, nil
}

// Logout revokes the session behind the token. Garbage tokens and already
// revoked sessions are not errors: logout is idempotent.
func (u *authUsecase) Logout(ctx context.Context, tokenString string) error {
	sessionID, err := u.tokens.Parse(tokenString)
	if err != nil {
		return nil
	}
	return u.sessions.Delete(ctx, sessionID)
}

func (u *authUsecase) resolveSession(ctx context.Context, tokenString string) (*domain.Session, error) {
	sessionID, err := u.tokens.Parse(tokenString)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired session")
	}
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid or expired session")
		}
		return nil, apperror.Internal(err)
	}
	return session, nil
}
