package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

// GetByAccountID retrieves a candidate profile document. Nested collections
// live in JSONB columns and are decoded on the way out.
func (r *candidateRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.CandidateProfile, error) {
	query := `
		SELECT account_id, first_name, last_name, phone, address, city, state,
		       zip_code, previous_experience, bio, skills, experience, education,
		       resume_url, created_at, updated_at
		FROM candidate_profiles
		WHERE account_id = $1`

	var profile domain.CandidateProfile
	var skills, experience, education []byte
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&profile.AccountID, &profile.FirstName, &profile.LastName, &profile.Phone,
		&profile.Address, &profile.City, &profile.State, &profile.ZipCode,
		&profile.PreviousExperience, &profile.Bio, &skills, &experience, &education,
		&profile.ResumeURL, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return nil, err
	}
	profile.Normalize()
	return &profile, nil
}

// Upsert replaces the whole profile document (1 profile per account).
func (r *candidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return err
	}
	experience, err := json.Marshal(profile.Experience)
	if err != nil {
		return err
	}
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidate_profiles (
			account_id, first_name, last_name, phone, address, city, state,
			zip_code, previous_experience, bio, skills, experience, education,
			resume_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (account_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip_code = EXCLUDED.zip_code,
			previous_experience = EXCLUDED.previous_experience,
			bio = EXCLUDED.bio,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			resume_url = EXCLUDED.resume_url,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at`

	return r.db.QueryRow(ctx, query,
		profile.AccountID, profile.FirstName, profile.LastName, profile.Phone,
		profile.Address, profile.City, profile.State, profile.ZipCode,
		profile.PreviousExperience, profile.Bio, skills, experience, education,
		profile.ResumeURL, now, now,
	).Scan(&profile.CreatedAt)
}
