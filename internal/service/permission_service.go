package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/repository"
)

// PermissionService handles the admin side of per-lecture grants.
type PermissionService struct {
	permRepo    *repository.PermissionRepository
	lectureRepo *repository.LectureRepository
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(permRepo *repository.PermissionRepository, lectureRepo *repository.LectureRepository) *PermissionService {
	return &PermissionService{permRepo: permRepo, lectureRepo: lectureRepo}
}

// ListForUser returns a user's grant rows.
func (s *PermissionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.LecturePermission, error) {
	return s.permRepo.ListByUser(ctx, userID)
}

// ListLectureIDs returns the set of lecture IDs granted to a user.
func (s *PermissionService) ListLectureIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.permRepo.ListLectureIDs(ctx, userID)
}

// Grant gives one user access to one lecture. Granting twice is a no-op.
func (s *PermissionService) Grant(ctx context.Context, userID, lectureID uuid.UUID, grantedBy uuid.UUID) error {
	// Surface unknown lectures as not-found instead of an FK violation.
	if _, err := s.lectureRepo.GetByID(ctx, lectureID); err != nil {
		return err
	}
	return s.permRepo.Grant(ctx, userID, lectureID, &grantedBy)
}

// Revoke removes one user's access to one lecture.
func (s *PermissionService) Revoke(ctx context.Context, userID, lectureID uuid.UUID) error {
	return s.permRepo.Revoke(ctx, userID, lectureID)
}

// GrantAll replaces a user's grants with the entire current catalog,
// active and inactive alike, in one transaction. Grants belonging to
// other users are untouched.
func (s *PermissionService) GrantAll(ctx context.Context, userID uuid.UUID, grantedBy uuid.UUID) ([]uuid.UUID, error) {
	lectures, err := s.lectureRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	lectureIDs := make([]uuid.UUID, 0, len(lectures))
	for _, l := range lectures {
		lectureIDs = append(lectureIDs, l.ID)
	}

	if err := s.permRepo.ReplaceAllForUser(ctx, userID, lectureIDs, &grantedBy); err != nil {
		return nil, err
	}
	return lectureIDs, nil
}

// RevokeAll removes every grant for one user.
func (s *PermissionService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return s.permRepo.RevokeAllForUser(ctx, userID)
}
