package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/repository"
)

// ScheduleService handles calendar-event business logic.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// MonthWindow returns the inclusive [first-instant, last-second] range of
// a month in server-local time, the window listByMonth filters on.
func MonthWindow(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	// Day zero of the next month normalizes to this month's last day.
	to := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.Local)
	return from, to
}

// List retrieves all events.
func (s *ScheduleService) List(ctx context.Context) ([]model.Schedule, error) {
	return s.scheduleRepo.List(ctx)
}

// ListByMonth retrieves the events starting within the given month.
func (s *ScheduleService) ListByMonth(ctx context.Context, year, month int) ([]model.Schedule, error) {
	from, to := MonthWindow(year, month)
	return s.scheduleRepo.ListByRange(ctx, from, to)
}

// DefaultColor returns the display color for an event type. Unknown types
// never get here; binding rejects them first.
func DefaultColor(t model.ScheduleType) string {
	if info, ok := model.ScheduleTypeInfos[t]; ok {
		return info.Color
	}
	return model.ScheduleTypeInfos[model.ScheduleTypeOther].Color
}

// Create inserts a new event, defaulting the color from the type table
// when the admin did not pick one.
func (s *ScheduleService) Create(ctx context.Context, req *model.CreateScheduleRequest) (*model.Schedule, error) {
	schedule := &model.Schedule{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Type:        req.Type,
		Color:       req.Color,
		IsRecurring: req.IsRecurring,
	}
	if req.Description != "" {
		schedule.Description = &req.Description
	}
	if req.Location != "" {
		schedule.Location = &req.Location
	}
	if schedule.Color == "" {
		schedule.Color = DefaultColor(req.Type)
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Update applies changes to an existing event with the same color
// defaulting as Create.
func (s *ScheduleService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateScheduleRequest) (*model.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule.Title = req.Title
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	schedule.Type = req.Type
	schedule.IsRecurring = req.IsRecurring
	schedule.Description = nil
	if req.Description != "" {
		schedule.Description = &req.Description
	}
	schedule.Location = nil
	if req.Location != "" {
		schedule.Location = &req.Location
	}
	schedule.Color = req.Color
	if schedule.Color == "" {
		schedule.Color = DefaultColor(req.Type)
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Delete removes an event.
func (s *ScheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scheduleRepo.Delete(ctx, id)
}
