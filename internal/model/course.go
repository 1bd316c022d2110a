package model

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course taught by one instructor.
type Course struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	InstructorID uuid.UUID     `json:"instructor_id"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	CreatedAt    time.Time     `json:"created_at"`
	Instructor   *UserSummary  `json:"instructor,omitempty"`
	Students     []UserSummary `json:"students,omitempty"`
	Lectures     []Lecture     `json:"lectures,omitempty"`
	Assignments  []Assignment  `json:"assignments,omitempty"`
}

// OwnerID implements authz.Owned.
func (c *Course) OwnerID() uuid.UUID { return c.InstructorID }

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Title       string    `json:"title" binding:"required,min=3,max=100"`
	Description string    `json:"description" binding:"required,min=10"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
}

// UpdateCourseRequest is the payload for updating a course.
type UpdateCourseRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=3,max=100"`
	Description string     `json:"description" binding:"omitempty,min=10"`
	StartDate   *time.Time `json:"start_date" binding:"omitempty"`
	EndDate     *time.Time `json:"end_date" binding:"omitempty"`
}
