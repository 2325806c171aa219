package model

import (
	"time"

	"github.com/google/uuid"
)

// Lecture represents one gated video lecture in the catalog.
type Lecture struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	YoutubeURL  string    `json:"youtube_url"`
	// ThumbnailURL is derived from the YouTube video ID when the admin
	// does not supply one explicitly.
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	OrderIndex   int     `json:"order_index"`
	// IsActive hides the lecture from the student catalog when false.
	// Admin views always include it.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogLecture is a lecture as shown to a student: the video URL is
// withheld unless the student may watch it.
type CatalogLecture struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	OrderIndex   int       `json:"order_index"`
	Accessible   bool      `json:"accessible"`
	YoutubeURL   string    `json:"youtube_url,omitempty"`
}

// CreateLectureRequest is the payload for creating a new lecture.
type CreateLectureRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Description  string `json:"description" binding:"omitempty,max=2000"`
	YoutubeURL   string `json:"youtube_url" binding:"required,max=500"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url,max=500"`
	IsActive     *bool  `json:"is_active" binding:"omitempty"`
}

// UpdateLectureRequest is the payload for updating an existing lecture.
type UpdateLectureRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Description  string `json:"description" binding:"omitempty,max=2000"`
	YoutubeURL   string `json:"youtube_url" binding:"required,max=500"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url,max=500"`
	OrderIndex   *int   `json:"order_index" binding:"omitempty,min=0"`
	IsActive     *bool  `json:"is_active" binding:"omitempty"`
}

// SetLectureActiveRequest toggles catalog visibility.
type SetLectureActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
