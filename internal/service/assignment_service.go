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

// Assignment domain errors.
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadySubmitted   = errors.New("already submitted")
)

// AssignmentService handles assignment and submission business logic.
type AssignmentService struct {
	assignments *repository.AssignmentRepository
	submissions *repository.SubmissionRepository
	courses     *repository.CourseRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	assignments *repository.AssignmentRepository,
	submissions *repository.SubmissionRepository,
	courses *repository.CourseRepository,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		submissions: submissions,
		courses:     courses,
	}
}

// Create inserts a new assignment into a course the caller owns.
func (s *AssignmentService) Create(ctx context.Context, caller *model.User, req *model.CreateAssignmentRequest) (*model.Assignment, error) {
	course, err := getCourse(ctx, s.courses, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	assignment := &model.Assignment{
		Title:       req.Title,
		Description: req.Description,
		CourseID:    req.CourseID,
		DueDate:     req.DueDate,
		TotalPoints: req.TotalPoints,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

// ListByCourse retrieves a course's assignments.
func (s *AssignmentService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Assignment, error) {
	assignments, err := s.assignments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	return assignments, nil
}

// Submit records the caller's answer to an assignment. One submission per
// student per assignment.
func (s *AssignmentService) Submit(ctx context.Context, caller *model.User, req *model.SubmitAssignmentRequest) (*model.Submission, error) {
	if _, err := s.assignments.GetByID(ctx, req.AssignmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}

	exists, err := s.submissions.Exists(ctx, req.AssignmentID, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("check submission: %w", err)
	}
	if exists {
		return nil, ErrAlreadySubmitted
	}

	submission := &model.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    caller.ID,
		Content:      req.Content,
		Attachments:  req.Attachments,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return submission, nil
}

// Grade records the instructor's grade and feedback on a submission.
// Ownership resolves through submission -> assignment -> course.
func (s *AssignmentService) Grade(ctx context.Context, caller *model.User, submissionID uuid.UUID, req *model.GradeSubmissionRequest) (*model.Submission, error) {
	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}

	assignment, err := s.assignments.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	course, err := getCourse(ctx, s.courses, assignment.CourseID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(caller, course, authz.Owner) {
		return nil, ErrNotOwner
	}

	submission.Grade = req.Grade
	if req.Feedback != "" {
		submission.Feedback = &req.Feedback
	}
	if err := s.submissions.UpdateGrade(ctx, submission); err != nil {
		return nil, fmt.Errorf("grade submission: %w", err)
	}

	// Re-read to pick up graded_at.
	return s.submissions.GetByID(ctx, submissionID)
}
