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

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

// GetByAccountID retrieves an employer profile, decoding the sponsors list
// and the projects tree from their JSONB columns.
func (r *employerRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.EmployerProfile, error) {
	query := `
		SELECT account_id, company_name, hiring_manager_first_name,
		       hiring_manager_last_name, hiring_manager_phone, address,
		       company_website, company_phone, company_address, company_location,
		       organization, cost_center, department,
		       preferred_communication_mode, project_sponsors, projects,
		       created_at, updated_at
		FROM employer_profiles
		WHERE account_id = $1`

	var profile domain.EmployerProfile
	var sponsors, projects []byte
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&profile.AccountID, &profile.CompanyName, &profile.HiringManagerFirstName,
		&profile.HiringManagerLastName, &profile.HiringManagerPhone, &profile.Address,
		&profile.CompanyWebsite, &profile.CompanyPhone, &profile.CompanyAddress,
		&profile.CompanyLocation, &profile.Organization, &profile.CostCenter,
		&profile.Department, &profile.PreferredCommunicationMode,
		&sponsors, &projects,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(sponsors, &profile.ProjectSponsors); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(projects, &profile.Projects); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert replaces the whole profile document, projects tree included, in a
// single statement. The store never sees a partially edited tree.
func (r *employerRepo) Upsert(ctx context.Context, profile *domain.EmployerProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	sponsors, err := json.Marshal(profile.ProjectSponsors)
	if err != nil {
		return err
	}
	projects, err := json.Marshal(profile.Projects)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employer_profiles (
			account_id, company_name, hiring_manager_first_name,
			hiring_manager_last_name, hiring_manager_phone, address,
			company_website, company_phone, company_address, company_location,
			organization, cost_center, department,
			preferred_communication_mode, project_sponsors, projects,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (account_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			hiring_manager_first_name = EXCLUDED.hiring_manager_first_name,
			hiring_manager_last_name = EXCLUDED.hiring_manager_last_name,
			hiring_manager_phone = EXCLUDED.hiring_manager_phone,
			address = EXCLUDED.address,
			company_website = EXCLUDED.company_website,
			company_phone = EXCLUDED.company_phone,
			company_address = EXCLUDED.company_address,
			company_location = EXCLUDED.company_location,
			organization = EXCLUDED.organization,
			cost_center = EXCLUDED.cost_center,
			department = EXCLUDED.department,
			preferred_communication_mode = EXCLUDED.preferred_communication_mode,
			project_sponsors = EXCLUDED.project_sponsors,
			projects = EXCLUDED.projects,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at`

	return r.db.QueryRow(ctx, query,
		profile.AccountID, profile.CompanyName, profile.HiringManagerFirstName,
		profile.HiringManagerLastName, profile.HiringManagerPhone, profile.Address,
		profile.CompanyWebsite, profile.CompanyPhone, profile.CompanyAddress,
		profile.CompanyLocation, profile.Organization, profile.CostCenter,
		profile.Department, profile.PreferredCommunicationMode,
		sponsors, projects,
		now, now,
	).Scan(&profile.CreatedAt)
}
