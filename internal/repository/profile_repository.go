package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

const profileColumns = `id, email, password_hash, name, phone, school, birth_date, role, all_access, created_at, updated_at`

// ProfileRepository handles profile data access.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func scanProfile(row interface{ Scan(...any) error }) (*model.Profile, error) {
	p := &model.Profile{}
	err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Name, &p.Phone, &p.School,
		&p.BirthDate, &p.Role, &p.AllAccess, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
}

// GetByEmail retrieves a profile by email.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email))
}

// Create inserts a new profile.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO profiles (email, password_hash, name, phone, school, birth_date, role, all_access)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		p.Email, p.PasswordHash, p.Name, p.Phone, p.School, p.BirthDate, p.Role, p.AllAccess,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// ListStudents retrieves student profiles, newest first, optionally
// filtered by a case-insensitive name/school search.
func (r *ProfileRepository) ListStudents(ctx context.Context, search string) ([]model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1`
	args := []any{model.RoleStudent}
	if search != "" {
		query += ` AND (name ILIKE $2 OR school ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// UpdateAccess changes a profile's role and all-access flag.
func (r *ProfileRepository) UpdateAccess(ctx context.Context, id uuid.UUID, role model.Role, allAccess bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles SET role = $1, all_access = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		role, allAccess, id,
	)
	return err
}

// Delete removes a profile by its ID.
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	return err
}
