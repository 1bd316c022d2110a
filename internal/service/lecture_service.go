package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/o064/SWE-Back-End/internal/authz"
	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/repository"
)

// ErrLectureNotFound is returned when no lecture matches the identifier.
var ErrLectureNotFound = errors.New("lecture not found")

// LectureService handles lecture business logic. Ownership resolves
// through the parent course.
type LectureService struct {
	lectures *repository.LectureRepository
	courses  *repository.CourseRepository
}

// NewLectureService creates a new LectureService.
func NewLectureService(lectures *repository.LectureRepository, courses *repository.CourseRepository) *LectureService {
	return &LectureService{lectures: lectures, courses: courses}
}

// Create inserts a new lecture into a course the caller owns.
func (s *LectureService) Create(ctx context.Context, caller *model.User, req *model.CreateLectureRequest) (*model.Lecture, error) {
	course, err := getCourse(ctx, s.courses, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	lecture := &model.Lecture{
		Title:       req.Title,
		Content:     req.Content,
		CourseID:    req.CourseID,
		VideoURL:    req.VideoURL,
		Attachments: req.Attachments,
		Order:       req.Order,
	}
	if err := s.lectures.Create(ctx, lecture); err != nil {
		return nil, fmt.Errorf("create lecture: %w", err)
	}
	return lecture, nil
}

// ListByCourse retrieves a course's lectures in their defined order.
func (s *LectureService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lecture, error) {
	lectures, err := s.lectures.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if lectures == nil {
		lectures = []model.Lecture{}
	}
	return lectures, nil
}

func (s *LectureService) getOwned(ctx context.Context, caller *model.User, id uuid.UUID) (*model.Lecture, error) {
	lecture, err := s.lectures.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLectureNotFound
		}
		return nil, fmt.Errorf("get lecture: %w", err)
	}

	course, err := getCourse(ctx, s.courses, lecture.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}
	return lecture, nil
}

// Update applies the non-empty fields of req to a lecture whose course the
// caller owns.
func (s *LectureService) Update(ctx context.Context, caller *model.User, id uuid.UUID, req *model.UpdateLectureRequest) (*model.Lecture, error) {
	lecture, err := s.getOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		lecture.Title = req.Title
	}
	if req.Content != "" {
		lecture.Content = req.Content
	}
	if req.VideoURL != nil {
		lecture.VideoURL = req.VideoURL
	}
	if req.Attachments != nil {
		lecture.Attachments = req.Attachments
	}
	if req.Order != nil {
		lecture.Order = *req.Order
	}

	if err := s.lectures.Update(ctx, lecture); err != nil {
		return nil, fmt.Errorf("update lecture: %w", err)
	}
	return lecture, nil
}

// Delete removes a lecture whose course the caller owns.
func (s *LectureService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.lectures.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lecture: %w", err)
	}
	return nil
}
