package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// CourseRepository handles course and enrollment data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (title, description, instructor_id, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		c.Title, c.Description, c.InstructorID, c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt)
}

// GetByID retrieves a course with its instructor summary.
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	c := &model.Course{Instructor: &model.UserSummary{}}
	err := r.pool.QueryRow(ctx,
		`SELECT c.id, c.title, c.description, c.instructor_id, c.start_date, c.end_date, c.created_at,
		        u.id, u.name, u.email
		 FROM courses c
		 JOIN users u ON u.id = c.instructor_id
		 WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.InstructorID, &c.StartDate, &c.EndDate, &c.CreatedAt,
		&c.Instructor.ID, &c.Instructor.Name, &c.Instructor.Email)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c := model.Course{Instructor: &model.UserSummary{}}
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.InstructorID,
			&c.StartDate, &c.EndDate, &c.CreatedAt,
			&c.Instructor.ID, &c.Instructor.Name, &c.Instructor.Email); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// List retrieves all courses with instructor summaries.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	return r.queryCourses(ctx,
		`SELECT c.id, c.title, c.description, c.instructor_id, c.start_date, c.end_date, c.created_at,
		        u.id, u.name, u.email
		 FROM courses c
		 JOIN users u ON u.id = c.instructor_id
		 ORDER BY c.created_at DESC`)
}

// ListByInstructor retrieves courses created by the given instructor.
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]model.Course, error) {
	return r.queryCourses(ctx,
		`SELECT c.id, c.title, c.description, c.instructor_id, c.start_date, c.end_date, c.created_at,
		        u.id, u.name, u.email
		 FROM courses c
		 JOIN users u ON u.id = c.instructor_id
		 WHERE c.instructor_id = $1
		 ORDER BY c.created_at DESC`, instructorID)
}

// ListByStudent retrieves courses the given student is enrolled in.
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Course, error) {
	return r.queryCourses(ctx,
		`SELECT c.id, c.title, c.description, c.instructor_id, c.start_date, c.end_date, c.created_at,
		        u.id, u.name, u.email
		 FROM courses c
		 JOIN users u ON u.id = c.instructor_id
		 JOIN course_enrollments e ON e.course_id = c.id
		 WHERE e.student_id = $1
		 ORDER BY c.created_at DESC`, studentID)
}

// Update persists the mutable fields of a course.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses
		 SET title = $1, description = $2, start_date = $3, end_date = $4
		 WHERE id = $5`,
		c.Title, c.Description, c.StartDate, c.EndDate, c.ID)
	return err
}

// Delete removes a course and, through FK cascades, its children.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

// IsEnrolled reports whether the student is enrolled in the course.
func (r *CourseRepository) IsEnrolled(ctx context.Context, courseID, studentID uuid.UUID) (bool, error) {
	var enrolled bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM course_enrollments WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID).Scan(&enrolled)
	return enrolled, err
}

// Enroll appends a student to the course roster.
func (r *CourseRepository) Enroll(ctx context.Context, courseID, studentID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO course_enrollments (course_id, student_id) VALUES ($1, $2)`,
		courseID, studentID)
	return err
}

// ListStudents retrieves enrollment summaries for a course.
func (r *CourseRepository) ListStudents(ctx context.Context, courseID uuid.UUID) ([]model.UserSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.name, u.email
		 FROM course_enrollments e
		 JOIN users u ON u.id = e.student_id
		 WHERE e.course_id = $1
		 ORDER BY e.enrolled_at`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.UserSummary
	for rows.Next() {
		var s model.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
