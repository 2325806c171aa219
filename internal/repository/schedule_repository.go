package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

const scheduleColumns = `id, title, description, location, start_time, end_time, type, color, is_recurring, created_at, updated_at`

// ScheduleRepository handles calendar-event data access.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func scanSchedule(row interface{ Scan(...any) error }) (*model.Schedule, error) {
	s := &model.Schedule{}
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Location, &s.StartTime,
		&s.EndTime, &s.Type, &s.Color, &s.IsRecurring, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ScheduleRepository) collect(rows pgx.Rows) ([]model.Schedule, error) {
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, rows.Err()
}

// List retrieves all events in start order.
func (r *ScheduleRepository) List(ctx context.Context) ([]model.Schedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules ORDER BY start_time ASC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListByRange retrieves events whose start_time falls in [from, to],
// bounds inclusive.
func (r *ScheduleRepository) ListByRange(ctx context.Context, from, to time.Time) ([]model.Schedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		 WHERE start_time >= $1 AND start_time <= $2
		 ORDER BY start_time ASC`, from, to)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// GetByID retrieves an event by its ID.
func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	return scanSchedule(r.pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
}

// Create inserts a new event.
func (r *ScheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO schedules (title, description, location, start_time, end_time, type, color, is_recurring)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		s.Title, s.Description, s.Location, s.StartTime, s.EndTime, s.Type, s.Color, s.IsRecurring,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing event.
func (r *ScheduleRepository) Update(ctx context.Context, s *model.Schedule) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE schedules
		 SET title = $1, description = $2, location = $3, start_time = $4, end_time = $5,
		     type = $6, color = $7, is_recurring = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9`,
		s.Title, s.Description, s.Location, s.StartTime, s.EndTime, s.Type, s.Color, s.IsRecurring, s.ID,
	)
	return err
}

// Delete removes an event by its ID.
func (r *ScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	return err
}
