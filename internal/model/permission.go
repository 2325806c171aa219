package model

import (
	"time"

	"github.com/google/uuid"
)

// LecturePermission is an explicit per-lecture grant. The existence of a
// row means access, independent of the lecture's active flag.
type LecturePermission struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	LectureID uuid.UUID  `json:"lecture_id"`
	GrantedAt time.Time  `json:"granted_at"`
	GrantedBy *uuid.UUID `json:"granted_by,omitempty"`
}

// GrantPermissionRequest is the payload for granting a single lecture.
type GrantPermissionRequest struct {
	LectureID uuid.UUID `json:"lecture_id" binding:"required"`
}
