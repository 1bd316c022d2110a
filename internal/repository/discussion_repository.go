package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/o064/SWE-Back-End/internal/model"
)

// DiscussionRepository handles discussion thread and reply data access.
type DiscussionRepository struct {
	pool *pgxpool.Pool
}

// NewDiscussionRepository creates a new DiscussionRepository.
func NewDiscussionRepository(pool *pgxpool.Pool) *DiscussionRepository {
	return &DiscussionRepository{pool: pool}
}

// Create inserts a new discussion thread.
func (r *DiscussionRepository) Create(ctx context.Context, d *model.Discussion) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO discussions (course_id, author_id, title, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		d.CourseID, d.AuthorID, d.Title, d.Content,
	).Scan(&d.ID, &d.CreatedAt)
}

// GetByID retrieves a discussion with its author summary and replies.
func (r *DiscussionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Discussion, error) {
	d := &model.Discussion{Author: &model.UserSummary{}}
	err := r.pool.QueryRow(ctx,
		`SELECT d.id, d.course_id, d.author_id, d.title, d.content, d.created_at,
		        u.id, u.name, u.email
		 FROM discussions d
		 JOIN users u ON u.id = d.author_id
		 WHERE d.id = $1`, id,
	).Scan(&d.ID, &d.CourseID, &d.AuthorID, &d.Title, &d.Content, &d.CreatedAt,
		&d.Author.ID, &d.Author.Name, &d.Author.Email)
	if err != nil {
		return nil, err
	}

	replies, err := r.listReplies(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Replies = replies
	return d, nil
}

// ListByCourse retrieves a course's discussions with authors and replies,
// newest thread first.
func (r *DiscussionRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Discussion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT d.id, d.course_id, d.author_id, d.title, d.content, d.created_at,
		        u.id, u.name, u.email
		 FROM discussions d
		 JOIN users u ON u.id = d.author_id
		 WHERE d.course_id = $1
		 ORDER BY d.created_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discussions []model.Discussion
	for rows.Next() {
		d := model.Discussion{Author: &model.UserSummary{}}
		if err := rows.Scan(&d.ID, &d.CourseID, &d.AuthorID, &d.Title, &d.Content, &d.CreatedAt,
			&d.Author.ID, &d.Author.Name, &d.Author.Email); err != nil {
			return nil, err
		}
		discussions = append(discussions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range discussions {
		replies, err := r.listReplies(ctx, discussions[i].ID)
		if err != nil {
			return nil, err
		}
		discussions[i].Replies = replies
	}
	return discussions, nil
}

// AddReply appends a reply to a discussion thread.
func (r *DiscussionRepository) AddReply(ctx context.Context, reply *model.Reply) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO discussion_replies (discussion_id, author_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		reply.DiscussionID, reply.AuthorID, reply.Content,
	).Scan(&reply.ID, &reply.CreatedAt)
}

func (r *DiscussionRepository) listReplies(ctx context.Context, discussionID uuid.UUID) ([]model.Reply, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT rp.id, rp.discussion_id, rp.author_id, rp.content, rp.created_at,
		        u.id, u.name, u.email
		 FROM discussion_replies rp
		 JOIN users u ON u.id = rp.author_id
		 WHERE rp.discussion_id = $1
		 ORDER BY rp.created_at ASC`, discussionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []model.Reply{}
	for rows.Next() {
		reply := model.Reply{Author: &model.UserSummary{}}
		if err := rows.Scan(&reply.ID, &reply.DiscussionID, &reply.AuthorID, &reply.Content, &reply.CreatedAt,
			&reply.Author.ID, &reply.Author.Name, &reply.Author.Email); err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}
