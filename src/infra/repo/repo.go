package repo

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"blogapi/src/core/ports"
	"blogapi/src/infra/db"
)

// New wires up all Postgres-backed repositories over a shared pool.
func New(pg *db.Postgres, log *slog.Logger) ports.Repositories {
	return ports.Repositories{
		Store:    pg,
		Users:    NewUserRepository(pg, log),
		Posts:    NewPostRepository(pg, log),
		Comments: NewCommentRepository(pg, log),
		Albums:   NewAlbumRepository(pg, log),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
