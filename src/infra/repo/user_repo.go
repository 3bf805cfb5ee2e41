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

// UserRepository implements ports.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pg *db.Postgres, log *slog.Logger) *UserRepository {
	return &UserRepository{pool: pg.Pool, log: log}
}

const userColumns = `user_id, email, password, name, created_at`

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, email).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY user_id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
		INSERT INTO users (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at
	`
	saved := *user
	err := r.pool.QueryRow(ctx, q, user.Email, user.Password, user.Name).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("email already registered")
		}
		return nil, err
	}
	return &saved, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM users WHERE user_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
