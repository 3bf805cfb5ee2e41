package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/src/core/domain"
	"blogapi/src/infra/db"
)

// CommentRepository implements ports.CommentRepository using pgx. Lookups
// join the parent post, the post's owner, and the comment author, since
// the two-sided delete rule needs all three.
type CommentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCommentRepository(pg *db.Postgres, log *slog.Logger) *CommentRepository {
	return &CommentRepository{pool: pg.Pool, log: log}
}

const commentSelect = `
	SELECT c.comment_id, c.text, c.date,
	       p.post_id, p.title, p.body, p.image_url, p.date,
	       pu.user_id, pu.email, pu.password, pu.name, pu.created_at,
	       cu.user_id, cu.email, cu.password, cu.name, cu.created_at
	FROM comments c
	JOIN posts p ON p.post_id = c.post_id
	JOIN users pu ON pu.user_id = p.user_id
	JOIN users cu ON cu.user_id = c.user_id
`

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	var p domain.Post
	var postOwner, author domain.User
	err := row.Scan(
		&c.ID, &c.Text, &c.Date,
		&p.ID, &p.Title, &p.Body, &p.ImageURL, &p.Date,
		&postOwner.ID, &postOwner.Email, &postOwner.Password, &postOwner.Name, &postOwner.CreatedAt,
		&author.ID, &author.Email, &author.Password, &author.Name, &author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.User = &postOwner
	c.Post = &p
	c.User = &author
	return &c, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := scanComment(r.pool.QueryRow(ctx, commentSelect+`WHERE c.comment_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepository) FindAll(ctx context.Context) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+`ORDER BY c.comment_id`)
}

func (r *CommentRepository) FindByPostID(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+`WHERE c.post_id = $1 ORDER BY c.date`, postID)
}

func (r *CommentRepository) queryComments(ctx context.Context, q string, args ...any) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Save(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	const q = `
		INSERT INTO comments (text, date, post_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`
	saved := *comment
	err := r.pool.QueryRow(ctx, q, comment.Text, comment.Date, comment.Post.ID, comment.User.ID).Scan(&saved.ID)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM comments WHERE comment_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
