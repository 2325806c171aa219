package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

// DashboardRepository handles admin dashboard data access. Each count is
// an independent read; the service layer fans them out concurrently.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// CountStudents returns the number of student profiles.
func (r *DashboardRepository) CountStudents(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles WHERE role = $1`, model.RoleStudent).Scan(&n)
	return n, err
}

// CountLectures returns the number of lectures, active or not.
func (r *DashboardRepository) CountLectures(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lectures`).Scan(&n)
	return n, err
}

// CountPermissions returns the number of grant rows.
func (r *DashboardRepository) CountPermissions(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lecture_permissions`).Scan(&n)
	return n, err
}

// DashboardRecentStudent is the minimal listing shape for recent sign-ups.
type DashboardRecentStudent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentStudents retrieves the latest N student sign-ups.
func (r *DashboardRepository) RecentStudents(ctx context.Context, limit int) ([]DashboardRecentStudent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM profiles
		 WHERE role = $1 ORDER BY created_at DESC LIMIT $2`,
		model.RoleStudent, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []DashboardRecentStudent
	for rows.Next() {
		var s DashboardRecentStudent
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if students == nil {
		students = []DashboardRecentStudent{}
	}
	return students, rows.Err()
}
