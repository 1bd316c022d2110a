package model

import (
	"time"

	"github.com/google/uuid"
)

// Discussion is a course discussion thread.
type Discussion struct {
	ID        uuid.UUID    `json:"id"`
	CourseID  uuid.UUID    `json:"course_id"`
	AuthorID  uuid.UUID    `json:"author_id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Author    *UserSummary `json:"author,omitempty"`
	Replies   []Reply      `json:"replies"`
}

// OwnerID implements authz.Owned.
func (d *Discussion) OwnerID() uuid.UUID { return d.AuthorID }

// Reply is one reply within a discussion thread.
type Reply struct {
	ID           uuid.UUID    `json:"id"`
	DiscussionID uuid.UUID    `json:"discussion_id"`
	AuthorID     uuid.UUID    `json:"author_id"`
	Content      string       `json:"content"`
	CreatedAt    time.Time    `json:"created_at"`
	Author       *UserSummary `json:"author,omitempty"`
}

// CreateDiscussionRequest is the payload for opening a thread.
type CreateDiscussionRequest struct {
	CourseID uuid.UUID `json:"course_id" binding:"required"`
	Title    string    `json:"title" binding:"required,min=3,max=150"`
	Content  string    `json:"content" binding:"required,min=10"`
}

// ReplyRequest is the payload for replying to a thread.
type ReplyRequest struct {
	Content string `json:"content" binding:"required,min=2"`
}
