package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one graded answer record inside a quiz submission, stored as
// JSONB alongside the submission.
type Answer struct {
	QuestionID    uuid.UUID `json:"question_id"`
	StudentAnswer string    `json:"student_answer"`
	IsCorrect     bool      `json:"is_correct"`
	PointsEarned  int       `json:"points_earned"`
}

// QuizSubmission is the immutable record of one quiz attempt.
type QuizSubmission struct {
	ID            uuid.UUID    `json:"id"`
	QuizID        uuid.UUID    `json:"quiz_id"`
	StudentID     uuid.UUID    `json:"student_id"`
	Answers       []Answer     `json:"answers"`
	TotalScore    int          `json:"total_score"`
	Percentage    float64      `json:"percentage"`
	Passed        bool         `json:"passed"`
	StartedAt     time.Time    `json:"started_at"`
	SubmittedAt   time.Time    `json:"submitted_at"`
	Feedback      string       `json:"feedback,omitempty"`
	AttemptNumber int          `json:"attempt_number"`
	Student       *UserSummary `json:"student,omitempty"`
}

// AnswerInput is one submitted answer before grading.
type AnswerInput struct {
	QuestionID    uuid.UUID `json:"question_id" binding:"required"`
	StudentAnswer string    `json:"student_answer" binding:"required"`
}

// SubmitQuizRequest is the payload for one quiz attempt.
type SubmitQuizRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required,dive"`
}
