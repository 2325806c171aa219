package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/repository"
	"github.com/daheemath/mathtutor-backend/internal/youtube"
)

// ErrInvalidYoutubeURL is returned when a lecture's video URL matches none
// of the known YouTube URL shapes. No write happens in that case.
var ErrInvalidYoutubeURL = errors.New("youtube url does not match any known shape")

// LectureService handles lecture catalog business logic.
type LectureService struct {
	lectureRepo *repository.LectureRepository
	access      *AccessService
}

// NewLectureService creates a new LectureService.
func NewLectureService(lectureRepo *repository.LectureRepository, access *AccessService) *LectureService {
	return &LectureService{lectureRepo: lectureRepo, access: access}
}

// List retrieves lectures in display order.
func (s *LectureService) List(ctx context.Context, activeOnly bool) ([]model.Lecture, error) {
	return s.lectureRepo.List(ctx, activeOnly)
}

// GetByID retrieves a lecture by its ID.
func (s *LectureService) GetByID(ctx context.Context, id uuid.UUID) (*model.Lecture, error) {
	return s.lectureRepo.GetByID(ctx, id)
}

// Create validates and inserts a new lecture. The video URL must parse to
// a video ID, the thumbnail is derived from it when absent, and the new
// lecture is appended at the end of the display order.
func (s *LectureService) Create(ctx context.Context, req *model.CreateLectureRequest) (*model.Lecture, error) {
	videoID := youtube.ExtractVideoID(req.YoutubeURL)
	if videoID == "" {
		return nil, ErrInvalidYoutubeURL
	}

	maxIndex, err := s.lectureRepo.MaxOrderIndex(ctx)
	if err != nil {
		return nil, err
	}

	lecture := &model.Lecture{
		Title:      req.Title,
		YoutubeURL: req.YoutubeURL,
		OrderIndex: maxIndex + 1,
		IsActive:   true,
	}
	if req.Description != "" {
		lecture.Description = &req.Description
	}
	if req.IsActive != nil {
		lecture.IsActive = *req.IsActive
	}
	thumbnail := req.ThumbnailURL
	if thumbnail == "" {
		thumbnail = youtube.ThumbnailURL(videoID, youtube.QualityHigh)
	}
	lecture.ThumbnailURL = &thumbnail

	if err := s.lectureRepo.Create(ctx, lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

// Update validates and applies changes to an existing lecture. Same URL
// and thumbnail rules as Create; the display position only moves when the
// request says so.
func (s *LectureService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateLectureRequest) (*model.Lecture, error) {
	videoID := youtube.ExtractVideoID(req.YoutubeURL)
	if videoID == "" {
		return nil, ErrInvalidYoutubeURL
	}

	lecture, err := s.lectureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lecture.Title = req.Title
	lecture.YoutubeURL = req.YoutubeURL
	lecture.Description = nil
	if req.Description != "" {
		lecture.Description = &req.Description
	}
	if req.OrderIndex != nil {
		lecture.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		lecture.IsActive = *req.IsActive
	}
	thumbnail := req.ThumbnailURL
	if thumbnail == "" {
		thumbnail = youtube.ThumbnailURL(videoID, youtube.QualityHigh)
	}
	lecture.ThumbnailURL = &thumbnail

	if err := s.lectureRepo.Update(ctx, lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

// SetActive toggles catalog visibility.
func (s *LectureService) SetActive(ctx context.Context, id uuid.UUID, isActive bool) (*model.Lecture, error) {
	if err := s.lectureRepo.UpdateActive(ctx, id, isActive); err != nil {
		return nil, err
	}
	return s.lectureRepo.GetByID(ctx, id)
}

// Delete removes a lecture permanently. There is no soft delete; the
// admin UI owns the confirmation step.
func (s *LectureService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.lectureRepo.Delete(ctx, id)
}

// Catalog returns the student view: active lectures only, each with the
// caller's access verdict, video URLs withheld from locked entries.
func (s *LectureService) Catalog(ctx context.Context, userID uuid.UUID) ([]model.CatalogLecture, error) {
	lectures, err := s.lectureRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	verdicts, err := s.access.AccessibleSet(ctx, userID, lectures)
	if err != nil {
		return nil, err
	}

	catalog := make([]model.CatalogLecture, 0, len(lectures))
	for _, l := range lectures {
		entry := model.CatalogLecture{
			ID:           l.ID,
			Title:        l.Title,
			Description:  l.Description,
			ThumbnailURL: l.ThumbnailURL,
			OrderIndex:   l.OrderIndex,
			Accessible:   verdicts[l.ID],
		}
		if entry.Accessible {
			entry.YoutubeURL = l.YoutubeURL
		}
		catalog = append(catalog, entry)
	}
	return catalog, nil
}

// CatalogDetail returns one lecture in the student view. A grant row
// keeps working even for inactive lectures on direct access; the gate is
// the access verdict, with the locked shape carrying no video URL.
func (s *LectureService) CatalogDetail(ctx context.Context, userID, lectureID uuid.UUID) (*model.CatalogLecture, error) {
	lecture, err := s.lectureRepo.GetByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}

	entry := &model.CatalogLecture{
		ID:           lecture.ID,
		Title:        lecture.Title,
		Description:  lecture.Description,
		ThumbnailURL: lecture.ThumbnailURL,
		OrderIndex:   lecture.OrderIndex,
		Accessible:   s.access.CanAccess(ctx, userID, lectureID),
	}
	if entry.Accessible {
		entry.YoutubeURL = lecture.YoutubeURL
	}
	return entry, nil
}
