package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// AssignmentRepository handles assignment data access.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO assignments (title, description, course_id, due_date, total_points)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.Title, a.Description, a.CourseID, a.DueDate, a.TotalPoints,
	).Scan(&a.ID, &a.CreatedAt)
}

// GetByID retrieves an assignment by its UUID.
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	a := &model.Assignment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, course_id, due_date, total_points, created_at
		 FROM assignments WHERE id = $1`, id,
	).Scan(&a.ID, &a.Title, &a.Description, &a.CourseID, &a.DueDate, &a.TotalPoints, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByCourse retrieves a course's assignments.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, course_id, due_date, total_points, created_at
		 FROM assignments WHERE course_id = $1
		 ORDER BY created_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.CourseID,
			&a.DueDate, &a.TotalPoints, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
