package model

import (
	"time"

	"github.com/google/uuid"
)

// Lecture represents a single lecture within a course.
type Lecture struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CourseID    uuid.UUID `json:"course_id"`
	VideoURL    *string   `json:"video_url,omitempty"`
	Attachments []string  `json:"attachments"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLectureRequest is the payload for creating a lecture.
type CreateLectureRequest struct {
	Title       string    `json:"title" binding:"required,min=3"`
	Content     string    `json:"content" binding:"required"`
	CourseID    uuid.UUID `json:"course_id" binding:"required"`
	VideoURL    *string   `json:"video_url" binding:"omitempty,startswith=http"`
	Attachments []string  `json:"attachments" binding:"omitempty"`
	Order       int       `json:"order" binding:"required,min=1"`
}

// UpdateLectureRequest is the payload for updating a lecture.
type UpdateLectureRequest struct {
	Title       string   `json:"title" binding:"omitempty,min=3"`
	Content     string   `json:"content" binding:"omitempty"`
	VideoURL    *string  `json:"video_url" binding:"omitempty,startswith=http"`
	Attachments []string `json:"attachments" binding:"omitempty"`
	Order       *int     `json:"order" binding:"omitempty,min=1"`
}
