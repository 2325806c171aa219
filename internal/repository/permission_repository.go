package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

// PermissionRepository handles lecture-permission data access.
type PermissionRepository struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository creates a new PermissionRepository.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{pool: pool}
}

// Exists reports whether a grant row exists for (userID, lectureID).
func (r *PermissionRepository) Exists(ctx context.Context, userID, lectureID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM lecture_permissions WHERE user_id = $1 AND lecture_id = $2
		 )`, userID, lectureID,
	).Scan(&exists)
	return exists, err
}

// ListLectureIDs returns the set of lecture IDs granted to a user.
func (r *PermissionRepository) ListLectureIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT lecture_id FROM lecture_permissions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListByUser returns a user's grant rows, newest first.
func (r *PermissionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LecturePermission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, lecture_id, granted_at, granted_by
		 FROM lecture_permissions WHERE user_id = $1 ORDER BY granted_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []model.LecturePermission
	for rows.Next() {
		var p model.LecturePermission
		if err := rows.Scan(&p.ID, &p.UserID, &p.LectureID, &p.GrantedAt, &p.GrantedBy); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// Grant inserts a grant row. A duplicate grant is a no-op: the unique
// (user_id, lecture_id) constraint plus ON CONFLICT keeps at most one row
// per pair.
func (r *PermissionRepository) Grant(ctx context.Context, userID, lectureID uuid.UUID, grantedBy *uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO lecture_permissions (user_id, lecture_id, granted_by)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, lecture_id) DO NOTHING`,
		userID, lectureID, grantedBy,
	)
	return err
}

// Revoke removes the grant row for (userID, lectureID).
func (r *PermissionRepository) Revoke(ctx context.Context, userID, lectureID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM lecture_permissions WHERE user_id = $1 AND lecture_id = $2`,
		userID, lectureID,
	)
	return err
}

// RevokeAllForUser removes every grant row for one user.
func (r *PermissionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM lecture_permissions WHERE user_id = $1`, userID)
	return err
}

// ReplaceAllForUser swaps a user's grants for exactly the given lecture
// IDs. Delete and insert run in one transaction so a failure cannot strand
// the user with zero permissions.
func (r *PermissionRepository) ReplaceAllForUser(ctx context.Context, userID uuid.UUID, lectureIDs []uuid.UUID, grantedBy *uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM lecture_permissions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear grants: %w", err)
	}

	batch := &pgx.Batch{}
	for _, lectureID := range lectureIDs {
		batch.Queue(
			`INSERT INTO lecture_permissions (user_id, lecture_id, granted_by)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, lecture_id) DO NOTHING`,
			userID, lectureID, grantedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert grants: %w", err)
	}

	return tx.Commit(ctx)
}
