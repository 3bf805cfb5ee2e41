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

// AlbumRepository implements ports.AlbumRepository using pgx.
type AlbumRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAlbumRepository(pg *db.Postgres, log *slog.Logger) *AlbumRepository {
	return &AlbumRepository{pool: pg.Pool, log: log}
}

const albumSelect = `
	SELECT a.album_id, a.image_url,
	       u.user_id, u.email, u.password, u.name, u.created_at
	FROM albums a
	JOIN users u ON u.user_id = a.user_id
`

func scanAlbum(row pgx.Row) (*domain.Album, error) {
	var a domain.Album
	var u domain.User
	err := row.Scan(
		&a.ID, &a.ImageURL,
		&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.User = &u
	return &a, nil
}

func (r *AlbumRepository) FindByID(ctx context.Context, id int64) (*domain.Album, error) {
	album, err := scanAlbum(r.pool.QueryRow(ctx, albumSelect+`WHERE a.album_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return album, nil
}

func (r *AlbumRepository) FindAll(ctx context.Context) ([]domain.Album, error) {
	rows, err := r.pool.Query(ctx, albumSelect+`ORDER BY a.album_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []domain.Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, *album)
	}
	return albums, rows.Err()
}

func (r *AlbumRepository) Save(ctx context.Context, album *domain.Album) (*domain.Album, error) {
	const q = `
		INSERT INTO albums (image_url, user_id)
		VALUES ($1, $2)
		RETURNING album_id
	`
	saved := *album
	err := r.pool.QueryRow(ctx, q, album.ImageURL, album.User.ID).Scan(&saved.ID)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *AlbumRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM albums WHERE album_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
