package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/daheemath/mathtutor-backend/internal/middleware"
	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/response"
	"github.com/daheemath/mathtutor-backend/internal/service"
	"github.com/daheemath/mathtutor-backend/internal/validator"
)

// PermissionHandler handles the admin permission back office.
type PermissionHandler struct {
	permissionService *service.PermissionService
}

// NewPermissionHandler creates a new PermissionHandler.
func NewPermissionHandler(permissionService *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

// ListPermissions godoc
// GET /api/v1/admin/students/:id/permissions
// Returns a student's grant rows plus the bare lecture-ID set.
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	perms, err := h.permissionService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	lectureIDs := make([]uuid.UUID, 0, len(perms))
	for _, p := range perms {
		lectureIDs = append(lectureIDs, p.LectureID)
	}

	response.Success(c, http.StatusOK, gin.H{
		"permissions": perms,
		"lecture_ids": lectureIDs,
	})
}

// GrantPermission godoc
// POST /api/v1/admin/students/:id/permissions
// Grants one lecture to one student. Granting twice is a no-op.
func (h *PermissionHandler) GrantPermission(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.GrantPermissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.permissionService.Grant(c.Request.Context(), userID, req.LectureID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				// Unknown student.
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "permission granted"})
}

// RevokePermission godoc
// DELETE /api/v1/admin/students/:id/permissions/:lecture_id
// Revocation of an absent grant succeeds idempotently.
func (h *PermissionHandler) RevokePermission(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	lectureID, err := uuid.Parse(c.Param("lecture_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.permissionService.Revoke(c.Request.Context(), userID, lectureID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "permission revoked"})
}

// GrantAll godoc
// POST /api/v1/admin/students/:id/permissions/grant-all
// Replaces the student's grants with the entire catalog in one
// transaction.
func (h *PermissionHandler) GrantAll(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	lectureIDs, err := h.permissionService.GrantAll(c.Request.Context(), userID, claims.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lecture_ids": lectureIDs})
}

// RevokeAll godoc
// DELETE /api/v1/admin/students/:id/permissions
func (h *PermissionHandler) RevokeAll(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.permissionService.RevokeAll(c.Request.Context(), userID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "all permissions revoked"})
}
