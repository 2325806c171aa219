package model

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes student and admin accounts.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Profile represents a user account. Every auth identity has exactly one
// profile row, created at sign-up.
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Phone        *string    `json:"phone,omitempty"`
	School       *string    `json:"school,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Role         Role       `json:"role"`
	// AllAccess unlocks every lecture without per-lecture grants.
	AllAccess bool      `json:"all_access"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// SignUpRequest is the payload for creating a new student account.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	School   string `json:"school" binding:"omitempty,max=100"`
	// BirthDate is accepted as YYYY-MM-DD.
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// UpdateStudentRequest is the admin payload for changing a student's
// access level or role.
type UpdateStudentRequest struct {
	Role      Role  `json:"role" binding:"omitempty,oneof=student admin"`
	AllAccess *bool `json:"all_access" binding:"omitempty"`
}
