package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionShortAnswer    QuestionType = "short-answer"
)

// Option is one selectable choice of a multiple-choice question.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is embedded in a quiz and stored alongside it as JSONB.
// CorrectAnswer holds the literal expected answer for true-false and
// short-answer questions; choice questions use the Options flags instead.
type Question struct {
	ID            uuid.UUID    `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []Option     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Points        int          `json:"points"`
	Explanation   string       `json:"explanation,omitempty"`
}

// Quiz represents a quiz belonging to a course. Students can only read or
// submit a quiz once IsPublished is set; publishing is irreversible.
type Quiz struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CourseID     uuid.UUID  `json:"course_id"`
	Questions    []Question `json:"questions"`
	DueDate      time.Time  `json:"due_date"`
	TotalPoints  int        `json:"total_points"`
	TimeLimit    int        `json:"time_limit"`
	PassingScore float64    `json:"passing_score"`
	Attempts     int        `json:"attempts"`
	IsPublished  bool       `json:"is_published"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// StudentQuestion is a question stripped of correctness data, safe to send
// to students before they submit.
type StudentQuestion struct {
	ID      uuid.UUID    `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	Points  int          `json:"points"`
}

// StudentQuizView is the Redis-cached quiz payload sent to students.
type StudentQuizView struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	CourseID     uuid.UUID         `json:"course_id"`
	Questions    []StudentQuestion `json:"questions"`
	DueDate      time.Time         `json:"due_date"`
	TotalPoints  int               `json:"total_points"`
	TimeLimit    int               `json:"time_limit"`
	PassingScore float64           `json:"passing_score"`
	Attempts     int               `json:"attempts"`
}

// StudentView strips correct answers and option flags from the quiz.
func (q *Quiz) StudentView() *StudentQuizView {
	view := &StudentQuizView{
		ID:           q.ID,
		Title:        q.Title,
		Description:  q.Description,
		CourseID:     q.CourseID,
		Questions:    make([]StudentQuestion, 0, len(q.Questions)),
		DueDate:      q.DueDate,
		TotalPoints:  q.TotalPoints,
		TimeLimit:    q.TimeLimit,
		PassingScore: q.PassingScore,
		Attempts:     q.Attempts,
	}
	for _, question := range q.Questions {
		sq := StudentQuestion{
			ID:     question.ID,
			Text:   question.Text,
			Type:   question.Type,
			Points: question.Points,
		}
		for _, opt := range question.Options {
			sq.Options = append(sq.Options, opt.Text)
		}
		view.Questions = append(view.Questions, sq)
	}
	return view
}

// QuestionInput is the payload for one question on quiz creation/update.
type QuestionInput struct {
	Text          string        `json:"text" binding:"required,min=5"`
	Type          string        `json:"type" binding:"required,oneof=multiple-choice true-false short-answer"`
	Options       []OptionInput `json:"options" binding:"omitempty,dive"`
	CorrectAnswer string        `json:"correct_answer" binding:"omitempty"`
	Points        int           `json:"points" binding:"required,min=1"`
	Explanation   string        `json:"explanation" binding:"omitempty"`
}

// OptionInput is the payload for one choice option.
type OptionInput struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// CreateQuizRequest is the payload for creating a quiz (always unpublished).
type CreateQuizRequest struct {
	Title        string          `json:"title" binding:"required,min=3,max=100"`
	Description  string          `json:"description" binding:"required,min=10"`
	CourseID     uuid.UUID       `json:"course_id" binding:"required"`
	Questions    []QuestionInput `json:"questions" binding:"omitempty,dive"`
	DueDate      time.Time       `json:"due_date" binding:"required"`
	TotalPoints  int             `json:"total_points" binding:"required,min=1"`
	TimeLimit    *int            `json:"time_limit" binding:"omitempty,min=1"`
	PassingScore *float64        `json:"passing_score" binding:"omitempty,min=0,max=100"`
	Attempts     *int            `json:"attempts" binding:"omitempty,min=1"`
}

// UpdateQuizRequest is the payload for updating a quiz.
type UpdateQuizRequest struct {
	Title        string          `json:"title" binding:"omitempty,min=3,max=100"`
	Description  string          `json:"description" binding:"omitempty,min=10"`
	Questions    []QuestionInput `json:"questions" binding:"omitempty,dive"`
	DueDate      *time.Time      `json:"due_date" binding:"omitempty"`
	TotalPoints  *int            `json:"total_points" binding:"omitempty,min=1"`
	TimeLimit    *int            `json:"time_limit" binding:"omitempty,min=1"`
	PassingScore *float64        `json:"passing_score" binding:"omitempty,min=0,max=100"`
	Attempts     *int            `json:"attempts" binding:"omitempty,min=1"`
}
