package service

import (
	"context"
	"sync"

	"github.com/daheemath/mathtutor-backend/internal/repository"
)

// DashboardData consolidates the stat cards and recent sign-ups for the
// admin dashboard.
type DashboardData struct {
	TotalStudents    int                                 `json:"total_students"`
	TotalLectures    int                                 `json:"total_lectures"`
	TotalPermissions int                                 `json:"total_permissions"`
	RecentStudents   []repository.DashboardRecentStudent `json:"recent_students"`
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData fetches the three stat counts concurrently, then the
// recent sign-up list. The counts are independent reads with no ordering
// dependency.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.TotalStudents, errs[0] = s.repo.CountStudents(ctx)
	}()
	go func() {
		defer wg.Done()
		data.TotalLectures, errs[1] = s.repo.CountLectures(ctx)
	}()
	go func() {
		defer wg.Done()
		data.TotalPermissions, errs[2] = s.repo.CountPermissions(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	recent, err := s.repo.RecentStudents(ctx, 5)
	if err != nil {
		return nil, err
	}
	data.RecentStudents = recent

	return data, nil
}
