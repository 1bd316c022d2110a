package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// QuizRepository handles quiz data access. Questions are embedded in the
// quiz row as a JSONB document, mirroring their lifecycle: they only exist
// as part of their quiz.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

const quizColumns = `id, title, description, course_id, questions, due_date,
	total_points, time_limit, passing_score, attempts, is_published, created_at, updated_at`

func scanQuiz(row interface{ Scan(dest ...any) error }) (*model.Quiz, error) {
	q := &model.Quiz{}
	var questions []byte
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.CourseID, &questions,
		&q.DueDate, &q.TotalPoints, &q.TimeLimit, &q.PassingScore, &q.Attempts,
		&q.IsPublished, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questions, &q.Questions); err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new quiz with its embedded questions.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	questions, err := json.Marshal(questionsOrEmpty(q.Questions))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (title, description, course_id, questions, due_date,
		                      total_points, time_limit, passing_score, attempts, is_published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		q.Title, q.Description, q.CourseID, questions, q.DueDate,
		q.TotalPoints, q.TimeLimit, q.PassingScore, q.Attempts, q.IsPublished,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetByID retrieves a quiz by its UUID.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	return scanQuiz(r.pool.QueryRow(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE id = $1`, id))
}

// ListPublishedByCourse retrieves a course's published quizzes, newest
// first, with their question documents left out.
func (r *QuizRepository) ListPublishedByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, course_id, '[]'::jsonb, due_date,
		        total_points, time_limit, passing_score, attempts, is_published, created_at, updated_at
		 FROM quizzes
		 WHERE course_id = $1 AND is_published = TRUE
		 ORDER BY created_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, *q)
	}
	return quizzes, rows.Err()
}

// Update persists the mutable fields of a quiz, including the full embedded
// question document.
func (r *QuizRepository) Update(ctx context.Context, q *model.Quiz) error {
	questions, err := json.Marshal(questionsOrEmpty(q.Questions))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`UPDATE quizzes
		 SET title = $1, description = $2, questions = $3, due_date = $4,
		     total_points = $5, time_limit = $6, passing_score = $7, attempts = $8,
		     updated_at = NOW()
		 WHERE id = $9
		 RETURNING updated_at`,
		q.Title, q.Description, questions, q.DueDate,
		q.TotalPoints, q.TimeLimit, q.PassingScore, q.Attempts, q.ID,
	).Scan(&q.UpdatedAt)
}

// SetPublished flips the publication flag. Publishing is irreversible at
// the API level; no unpublish operation exists.
func (r *QuizRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET is_published = $1, updated_at = NOW() WHERE id = $2`,
		published, id)
	return err
}

// ListPublished returns all published quizzes. Used for cache prewarming
// on application startup.
func (r *QuizRepository) ListPublished(ctx context.Context) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE is_published = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, *q)
	}
	return quizzes, rows.Err()
}

// Delete removes a quiz and, through FK cascades, its submissions.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	return err
}

func questionsOrEmpty(q []model.Question) []model.Question {
	if q == nil {
		return []model.Question{}
	}
	return q
}
