package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/repository"
)

// ErrDiscussionNotFound is returned when no thread matches the identifier.
var ErrDiscussionNotFound = errors.New("discussion not found")

// DiscussionService handles discussion thread business logic.
type DiscussionService struct {
	discussions *repository.DiscussionRepository
	courses     *repository.CourseRepository
}

// NewDiscussionService creates a new DiscussionService.
func NewDiscussionService(discussions *repository.DiscussionRepository, courses *repository.CourseRepository) *DiscussionService {
	return &DiscussionService{discussions: discussions, courses: courses}
}

// Create opens a thread in a course. Any authenticated member may post.
func (s *DiscussionService) Create(ctx context.Context, caller *model.User, req *model.CreateDiscussionRequest) (*model.Discussion, error) {
	if _, err := getCourse(ctx, s.courses, req.CourseID); err != nil {
		return nil, err
	}

	discussion := &model.Discussion{
		CourseID: req.CourseID,
		AuthorID: caller.ID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := s.discussions.Create(ctx, discussion); err != nil {
		return nil, fmt.Errorf("create discussion: %w", err)
	}
	discussion.Author = &model.UserSummary{ID: caller.ID, Name: caller.Name, Email: caller.Email}
	discussion.Replies = []model.Reply{}
	return discussion, nil
}

// ListByCourse retrieves a course's threads with authors and replies,
// newest first.
func (s *DiscussionService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Discussion, error) {
	discussions, err := s.discussions.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if discussions == nil {
		discussions = []model.Discussion{}
	}
	return discussions, nil
}

// Reply appends a reply to a thread and returns the updated thread.
func (s *DiscussionService) Reply(ctx context.Context, caller *model.User, discussionID uuid.UUID, req *model.ReplyRequest) (*model.Discussion, error) {
	if _, err := s.discussions.GetByID(ctx, discussionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDiscussionNotFound
		}
		return nil, fmt.Errorf("get discussion: %w", err)
	}

	reply := &model.Reply{
		DiscussionID: discussionID,
		AuthorID:     caller.ID,
		Content:      req.Content,
	}
	if err := s.discussions.AddReply(ctx, reply); err != nil {
		return nil, fmt.Errorf("add reply: %w", err)
	}

	return s.discussions.GetByID(ctx, discussionID)
}
