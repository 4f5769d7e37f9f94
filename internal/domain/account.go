package domain

import (
	"context"
	"time"
)

type AccountKind string

const (
	KindCandidate AccountKind = "candidate"
	KindEmployer  AccountKind = "employer"
)

// Valid reports whether k is one of the two supported account kinds.
func (k AccountKind) Valid() bool {
	return k == KindCandidate || k == KindEmployer
}

// Account is one credential record. Email is stored trimmed and
// lower-cased; Kind is immutable after registration.
type Account struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Kind         AccountKind `json:"kind"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// RegisterInput carries registration-time fields. The profile fields seed
// the empty owned profile of the matching kind.
type RegisterInput struct {
	Email    string
	Password string
	Kind     AccountKind
	// Candidate seed fields
	FirstName string
	LastName  string
	// Employer seed fields
	CompanyName            string
	HiringManagerFirstName string
	HiringManagerLastName  string
	HiringManagerPhone     string
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*Account, error)
	Authenticate(ctx context.Context, email, password string) (*Account, string, error)
	CurrentUser(ctx context.Context, tokenString string) (*Account, error)
	Logout(ctx context.Context, tokenString string) error
}
