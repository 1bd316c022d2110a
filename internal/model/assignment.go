package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment represents a gradeable course assignment.
type Assignment struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CourseID    uuid.UUID `json:"course_id"`
	DueDate     time.Time `json:"due_date"`
	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
}

// Submission represents a student's answer to an assignment. One per
// student per assignment; grade and feedback are filled in later by the
// instructor.
type Submission struct {
	ID           uuid.UUID  `json:"id"`
	AssignmentID uuid.UUID  `json:"assignment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	Content      string     `json:"content"`
	Attachments  []string   `json:"attachments"`
	Grade        *float64   `json:"grade,omitempty"`
	Feedback     *string    `json:"feedback,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}

// CreateAssignmentRequest is the payload for creating an assignment.
type CreateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required,min=3,max=100"`
	Description string    `json:"description" binding:"required,min=10"`
	CourseID    uuid.UUID `json:"course_id" binding:"required"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	TotalPoints int       `json:"total_points" binding:"required,min=1"`
}

// SubmitAssignmentRequest is the payload for handing in an assignment.
type SubmitAssignmentRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" binding:"required"`
	Content      string    `json:"content" binding:"required,min=5"`
	Attachments  []string  `json:"attachments" binding:"omitempty"`
}

// GradeSubmissionRequest is the instructor payload for grading a submission.
type GradeSubmissionRequest struct {
	Grade    *float64 `json:"grade" binding:"required,min=0"`
	Feedback string   `json:"feedback" binding:"omitempty,max=500"`
}
