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

// PostRepository implements ports.PostRepository using pgx. Every lookup
// joins the owning user so services can run ownership checks without a
// second query.
type PostRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostRepository(pg *db.Postgres, log *slog.Logger) *PostRepository {
	return &PostRepository{pool: pg.Pool, log: log}
}

const postSelect = `
	SELECT p.post_id, p.title, p.body, p.image_url, p.date,
	       u.user_id, u.email, u.password, u.name, u.created_at
	FROM posts p
	JOIN users u ON u.user_id = p.user_id
`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var u domain.User
	err := row.Scan(
		&p.ID, &p.Title, &p.Body, &p.ImageURL, &p.Date,
		&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.User = &u
	return &p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := scanPost(r.pool.QueryRow(ctx, postSelect+`WHERE p.post_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	// Case-insensitive exact match; the newest post wins when titles collide.
	const tail = `WHERE LOWER(p.title) = LOWER($1) ORDER BY p.date DESC LIMIT 1`
	post, err := scanPost(r.pool.QueryRow(ctx, postSelect+tail, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+`ORDER BY p.post_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	const q = `
		INSERT INTO posts (title, body, image_url, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id
	`
	saved := *post
	err := r.pool.QueryRow(ctx, q, post.Title, post.Body, post.ImageURL, post.Date, post.User.ID).Scan(&saved.ID)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PostRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	// Comments go with the post via ON DELETE CASCADE.
	const q = `DELETE FROM posts WHERE post_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
