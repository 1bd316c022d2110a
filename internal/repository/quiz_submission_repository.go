package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// QuizSubmissionRepository handles quiz attempt records. Rows are written
// once per attempt and never updated or deleted through the API.
type QuizSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewQuizSubmissionRepository creates a new QuizSubmissionRepository.
func NewQuizSubmissionRepository(pool *pgxpool.Pool) *QuizSubmissionRepository {
	return &QuizSubmissionRepository{pool: pool}
}

// Create inserts one attempt with its graded answer breakdown.
func (r *QuizSubmissionRepository) Create(ctx context.Context, s *model.QuizSubmission) error {
	answers, err := json.Marshal(answersOrEmpty(s.Answers))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz_submissions (quiz_id, student_id, answers, total_score,
		                               percentage, passed, attempt_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, started_at, submitted_at`,
		s.QuizID, s.StudentID, answers, s.TotalScore,
		s.Percentage, s.Passed, s.AttemptNumber,
	).Scan(&s.ID, &s.StartedAt, &s.SubmittedAt)
}

// CountByQuizAndStudent returns how many attempts the student has made.
//
// This count and the subsequent insert are intentionally not combined in a
// transaction; two concurrent submits can both pass the attempt-limit
// check. Known race, accepted by design.
func (r *QuizSubmissionRepository) CountByQuizAndStudent(ctx context.Context, quizID, studentID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quiz_submissions WHERE quiz_id = $1 AND student_id = $2`,
		quizID, studentID).Scan(&count)
	return count, err
}

func (r *QuizSubmissionRepository) querySubmissions(ctx context.Context, query string, args ...any) ([]model.QuizSubmission, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []model.QuizSubmission
	for rows.Next() {
		s := model.QuizSubmission{Student: &model.UserSummary{}}
		var answers []byte
		if err := rows.Scan(&s.ID, &s.QuizID, &s.StudentID, &answers, &s.TotalScore,
			&s.Percentage, &s.Passed, &s.StartedAt, &s.SubmittedAt, &s.Feedback, &s.AttemptNumber,
			&s.Student.ID, &s.Student.Name, &s.Student.Email); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &s.Answers); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// ListByQuiz retrieves all attempts for a quiz with student summaries,
// newest first.
func (r *QuizSubmissionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.QuizSubmission, error) {
	return r.querySubmissions(ctx,
		`SELECT s.id, s.quiz_id, s.student_id, s.answers, s.total_score,
		        s.percentage, s.passed, s.started_at, s.submitted_at,
		        COALESCE(s.feedback, ''), s.attempt_number,
		        u.id, u.name, u.email
		 FROM quiz_submissions s
		 JOIN users u ON u.id = s.student_id
		 WHERE s.quiz_id = $1
		 ORDER BY s.submitted_at DESC`, quizID)
}

// ListByQuizAndStudent retrieves one student's attempts, newest first.
func (r *QuizSubmissionRepository) ListByQuizAndStudent(ctx context.Context, quizID, studentID uuid.UUID) ([]model.QuizSubmission, error) {
	return r.querySubmissions(ctx,
		`SELECT s.id, s.quiz_id, s.student_id, s.answers, s.total_score,
		        s.percentage, s.passed, s.started_at, s.submitted_at,
		        COALESCE(s.feedback, ''), s.attempt_number,
		        u.id, u.name, u.email
		 FROM quiz_submissions s
		 JOIN users u ON u.id = s.student_id
		 WHERE s.quiz_id = $1 AND s.student_id = $2
		 ORDER BY s.submitted_at DESC`, quizID, studentID)
}

func answersOrEmpty(a []model.Answer) []model.Answer {
	if a == nil {
		return []model.Answer{}
	}
	return a
}
