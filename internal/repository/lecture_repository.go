package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

const lectureColumns = `id, title, description, youtube_url, thumbnail_url, order_index, is_active, created_at, updated_at`

// LectureRepository handles lecture data access.
type LectureRepository struct {
	pool *pgxpool.Pool
}

// NewLectureRepository creates a new LectureRepository.
func NewLectureRepository(pool *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{pool: pool}
}

func scanLecture(row interface{ Scan(...any) error }) (*model.Lecture, error) {
	l := &model.Lecture{}
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.YoutubeURL, &l.ThumbnailURL,
		&l.OrderIndex, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List retrieves lectures in display order. When activeOnly is true only
// catalog-visible lectures are returned (the student view); admin views
// pass false and see everything.
func (r *LectureRepository) List(ctx context.Context, activeOnly bool) ([]model.Lecture, error) {
	query := `SELECT ` + lectureColumns + ` FROM lectures`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY order_index ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []model.Lecture
	for rows.Next() {
		l, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, *l)
	}
	return lectures, rows.Err()
}

// GetByID retrieves a lecture by its ID.
func (r *LectureRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lecture, error) {
	return scanLecture(r.pool.QueryRow(ctx,
		`SELECT `+lectureColumns+` FROM lectures WHERE id = $1`, id))
}

// MaxOrderIndex returns the highest order_index, or -1 when the catalog is
// empty, so new lectures land at max+1.
func (r *LectureRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	var max int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(order_index), -1) FROM lectures`).Scan(&max)
	return max, err
}

// Create inserts a new lecture.
func (r *LectureRepository) Create(ctx context.Context, l *model.Lecture) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lectures (title, description, youtube_url, thumbnail_url, order_index, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		l.Title, l.Description, l.YoutubeURL, l.ThumbnailURL, l.OrderIndex, l.IsActive,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update modifies an existing lecture.
func (r *LectureRepository) Update(ctx context.Context, l *model.Lecture) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lectures
		 SET title = $1, description = $2, youtube_url = $3, thumbnail_url = $4,
		     order_index = $5, is_active = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7`,
		l.Title, l.Description, l.YoutubeURL, l.ThumbnailURL, l.OrderIndex, l.IsActive, l.ID,
	)
	return err
}

// UpdateActive toggles catalog visibility.
func (r *LectureRepository) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lectures SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		isActive, id,
	)
	return err
}

// Delete removes a lecture by its ID. Grant rows go with it via the
// foreign key cascade.
func (r *LectureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lectures WHERE id = $1`, id)
	return err
}
