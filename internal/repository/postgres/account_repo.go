package postgres

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (id, email, password_hash, kind, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Kind,
		account.CreatedAt, account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, kind, created_at, updated_at
              FROM accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByEmail expects an already-normalized (trimmed, lower-cased) email;
// rows are stored normalized at registration.
func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, kind, created_at, updated_at
              FROM accounts WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *accountRepo) scanOne(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Kind,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}
