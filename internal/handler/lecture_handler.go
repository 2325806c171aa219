package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daheemath/mathtutor-backend/internal/middleware"
	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/response"
	"github.com/daheemath/mathtutor-backend/internal/service"
	"github.com/daheemath/mathtutor-backend/internal/validator"
)

// LectureHandler handles the student catalog and admin lecture CRUD.
type LectureHandler struct {
	lectureService *service.LectureService
}

// NewLectureHandler creates a new LectureHandler.
func NewLectureHandler(lectureService *service.LectureService) *LectureHandler {
	return &LectureHandler{lectureService: lectureService}
}

// ─── Student-facing ────────────────────────────────────────────────────

// Catalog godoc
// GET /api/v1/student/lectures
// Lists active lectures with the caller's access verdict per entry.
// Locked entries carry no video URL; that is gating, not an error.
func (h *LectureHandler) Catalog(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	catalog, err := h.lectureService.Catalog(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lectures": catalog})
}

// CatalogDetail godoc
// GET /api/v1/student/lectures/:id
// Returns one lecture with the caller's access verdict.
func (h *LectureHandler) CatalogDetail(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	entry, err := h.lectureService.CatalogDetail(c.Request.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lecture": entry})
}

// ─── Admin ─────────────────────────────────────────────────────────────

// ListLectures godoc
// GET /api/v1/admin/lectures
// Lists all lectures, inactive included.
func (h *LectureHandler) ListLectures(c *gin.Context) {
	lectures, err := h.lectureService.List(c.Request.Context(), false)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lectures": lectures})
}

// GetLecture godoc
// GET /api/v1/admin/lectures/:id
func (h *LectureHandler) GetLecture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	lecture, err := h.lectureService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// CreateLecture godoc
// POST /api/v1/admin/lectures
// Creates a lecture. An unparseable video URL fails validation and
// writes nothing.
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	var req model.CreateLectureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidYoutubeURL) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidYoutubeURL)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lecture": lecture})
}

// UpdateLecture godoc
// PUT /api/v1/admin/lectures/:id
func (h *LectureHandler) UpdateLecture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateLectureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidYoutubeURL):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidYoutubeURL)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// SetLectureActive godoc
// PATCH /api/v1/admin/lectures/:id/active
func (h *LectureHandler) SetLectureActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SetLectureActiveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// DeleteLecture godoc
// DELETE /api/v1/admin/lectures/:id
// Deletion is immediate and unrecoverable.
func (h *LectureHandler) DeleteLecture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.lectureService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "lecture deleted successfully"})
}
