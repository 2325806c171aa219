package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/repository"
)

// ProfileService handles profile business logic.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetByID retrieves a profile by its ID.
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a profile by email.
func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return s.profileRepo.GetByEmail(ctx, email)
}

// SignUp creates a student profile from a sign-up request and an already
// hashed password. New accounts always start as students without
// all-access; only an admin can raise either.
func (s *ProfileService) SignUp(ctx context.Context, req *model.SignUpRequest, passwordHash string) (*model.Profile, error) {
	profile := &model.Profile{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         model.RoleStudent,
		AllAccess:    false,
	}
	if req.Phone != "" {
		profile.Phone = &req.Phone
	}
	if req.School != "" {
		profile.School = &req.School
	}
	if req.BirthDate != "" {
		// Validated as 2006-01-02 at binding time.
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, err
		}
		profile.BirthDate = &birthDate
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListStudents retrieves student profiles with an optional search filter.
func (s *ProfileService) ListStudents(ctx context.Context, search string) ([]model.Profile, error) {
	return s.profileRepo.ListStudents(ctx, search)
}

// UpdateAccess applies an admin's role/all-access change to a profile and
// returns the updated row.
func (s *ProfileService) UpdateAccess(ctx context.Context, id uuid.UUID, req *model.UpdateStudentRequest) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := profile.Role
	if req.Role != "" {
		role = req.Role
	}
	allAccess := profile.AllAccess
	if req.AllAccess != nil {
		allAccess = *req.AllAccess
	}

	if err := s.profileRepo.UpdateAccess(ctx, id, role, allAccess); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, id)
}

// Delete removes a profile.
func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.profileRepo.Delete(ctx, id)
}
