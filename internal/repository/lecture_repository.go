package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// LectureRepository handles lecture data access.
type LectureRepository struct {
	pool *pgxpool.Pool
}

// NewLectureRepository creates a new LectureRepository.
func NewLectureRepository(pool *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{pool: pool}
}

// Create inserts a new lecture.
func (r *LectureRepository) Create(ctx context.Context, l *model.Lecture) error {
	attachments, err := json.Marshal(attachmentsOrEmpty(l.Attachments))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO lectures (title, content, course_id, video_url, attachments, lecture_order)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		l.Title, l.Content, l.CourseID, l.VideoURL, attachments, l.Order,
	).Scan(&l.ID, &l.CreatedAt)
}

// GetByID retrieves a lecture by its UUID.
func (r *LectureRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lecture, error) {
	l := &model.Lecture{}
	var attachments []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, course_id, video_url, attachments, lecture_order, created_at
		 FROM lectures WHERE id = $1`, id,
	).Scan(&l.ID, &l.Title, &l.Content, &l.CourseID, &l.VideoURL, &attachments, &l.Order, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attachments, &l.Attachments); err != nil {
		return nil, err
	}
	return l, nil
}

// ListByCourse retrieves a course's lectures ordered by their position.
func (r *LectureRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lecture, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, course_id, video_url, attachments, lecture_order, created_at
		 FROM lectures WHERE course_id = $1
		 ORDER BY lecture_order ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []model.Lecture
	for rows.Next() {
		var l model.Lecture
		var attachments []byte
		if err := rows.Scan(&l.ID, &l.Title, &l.Content, &l.CourseID, &l.VideoURL,
			&attachments, &l.Order, &l.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(attachments, &l.Attachments); err != nil {
			return nil, err
		}
		lectures = append(lectures, l)
	}
	return lectures, rows.Err()
}

// Update persists the mutable fields of a lecture.
func (r *LectureRepository) Update(ctx context.Context, l *model.Lecture) error {
	attachments, err := json.Marshal(attachmentsOrEmpty(l.Attachments))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE lectures
		 SET title = $1, content = $2, video_url = $3, attachments = $4, lecture_order = $5
		 WHERE id = $6`,
		l.Title, l.Content, l.VideoURL, attachments, l.Order, l.ID)
	return err
}

// Delete removes a lecture.
func (r *LectureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lectures WHERE id = $1`, id)
	return err
}

// attachmentsOrEmpty keeps JSONB columns as [] instead of null.
func attachmentsOrEmpty(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}
