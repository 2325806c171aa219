package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/response"
	"github.com/daheemath/mathtutor-backend/internal/service"
	"github.com/daheemath/mathtutor-backend/internal/validator"
)

// ScheduleHandler handles the public calendar and admin event CRUD.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListSchedules godoc
// GET /api/v1/schedules[?year=2025&month=2]
// Without parameters lists everything; with both, only the events
// starting within that month.
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	yearStr, monthStr := c.Query("year"), c.Query("month")

	var (
		schedules []model.Schedule
		err       error
	)
	if yearStr != "" || monthStr != "" {
		year, yearErr := strconv.Atoi(yearStr)
		month, monthErr := strconv.Atoi(monthStr)
		if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		schedules, err = h.scheduleService.ListByMonth(c.Request.Context(), year, month)
	} else {
		schedules, err = h.scheduleService.List(c.Request.Context())
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedules": schedules})
}

// ScheduleTypes godoc
// GET /api/v1/schedules/types
// Returns the fixed type → color/label table for the calendar legend.
func (h *ScheduleHandler) ScheduleTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"types": model.ScheduleTypeInfos})
}

// CreateSchedule godoc
// POST /api/v1/admin/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req model.CreateScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"schedule": schedule})
}

// UpdateSchedule godoc
// PUT /api/v1/admin/schedules/:id
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

// DeleteSchedule godoc
// DELETE /api/v1/admin/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "schedule deleted successfully"})
}
