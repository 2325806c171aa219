package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleType is the fixed taxonomy of calendar event types.
type ScheduleType string

const (
	ScheduleTypeClass        ScheduleType = "class"
	ScheduleTypeSpecial      ScheduleType = "special"
	ScheduleTypeConsultation ScheduleType = "consultation"
	ScheduleTypeOther        ScheduleType = "other"
)

// ScheduleTypeInfo carries the display color and label for an event type.
type ScheduleTypeInfo struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// ScheduleTypeInfos maps each event type to its default display color and
// Korean label. The color may be overridden per event.
var ScheduleTypeInfos = map[ScheduleType]ScheduleTypeInfo{
	ScheduleTypeClass:        {Color: "#6366F1", Label: "정규 수업"},
	ScheduleTypeSpecial:      {Color: "#EC4899", Label: "보충수업"},
	ScheduleTypeConsultation: {Color: "#10B981", Label: "클리닉"},
	ScheduleTypeOther:        {Color: "#F59E0B", Label: "설명회"},
}

// Schedule represents one calendar event.
type Schedule struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Location    *string      `json:"location,omitempty"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     *time.Time   `json:"end_time,omitempty"`
	Type        ScheduleType `json:"type"`
	Color       string       `json:"color"`
	// IsRecurring is stored but no read path expands recurrences.
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateScheduleRequest is the payload for creating a calendar event.
// EndTime is deliberately not validated against StartTime; the product
// treats open-ended and reversed ranges as the admin's own business.
type CreateScheduleRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=255"`
	Description string       `json:"description" binding:"omitempty,max=2000"`
	Location    string       `json:"location" binding:"omitempty,max=255"`
	StartTime   time.Time    `json:"start_time" binding:"required"`
	EndTime     *time.Time   `json:"end_time" binding:"omitempty"`
	Type        ScheduleType `json:"type" binding:"required,oneof=class special consultation other"`
	Color       string       `json:"color" binding:"omitempty,hexcolor"`
	IsRecurring bool         `json:"is_recurring"`
}

// UpdateScheduleRequest is the payload for updating a calendar event.
type UpdateScheduleRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=255"`
	Description string       `json:"description" binding:"omitempty,max=2000"`
	Location    string       `json:"location" binding:"omitempty,max=255"`
	StartTime   time.Time    `json:"start_time" binding:"required"`
	EndTime     *time.Time   `json:"end_time" binding:"omitempty"`
	Type        ScheduleType `json:"type" binding:"required,oneof=class special consultation other"`
	Color       string       `json:"color" binding:"omitempty,hexcolor"`
	IsRecurring bool         `json:"is_recurring"`
}
