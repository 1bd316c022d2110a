package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// SubmissionRepository handles assignment submission data access.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// Create inserts a new submission.
func (r *SubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	attachments, err := json.Marshal(attachmentsOrEmpty(s.Attachments))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO submissions (assignment_id, student_id, content, attachments)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, submitted_at`,
		s.AssignmentID, s.StudentID, s.Content, attachments,
	).Scan(&s.ID, &s.SubmittedAt)
}

func scanSubmission(row interface{ Scan(dest ...any) error }) (*model.Submission, error) {
	s := &model.Submission{}
	var attachments []byte
	err := row.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.Content, &attachments,
		&s.Grade, &s.Feedback, &s.SubmittedAt, &s.GradedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attachments, &s.Attachments); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a submission by its UUID.
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	return scanSubmission(r.pool.QueryRow(ctx,
		`SELECT id, assignment_id, student_id, content, attachments, grade, feedback, submitted_at, graded_at
		 FROM submissions WHERE id = $1`, id))
}

// Exists reports whether the student already submitted the assignment.
func (r *SubmissionRepository) Exists(ctx context.Context, assignmentID, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM submissions WHERE assignment_id = $1 AND student_id = $2)`,
		assignmentID, studentID).Scan(&exists)
	return exists, err
}

// UpdateGrade records the instructor's grade and feedback.
func (r *SubmissionRepository) UpdateGrade(ctx context.Context, s *model.Submission) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions
		 SET grade = $1, feedback = $2, graded_at = NOW()
		 WHERE id = $3`,
		s.Grade, s.Feedback, s.ID)
	return err
}
