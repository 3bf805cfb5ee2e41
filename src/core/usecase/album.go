package usecase

import (
	"context"
	"log/slog"
	"strings"

	"blogapi/src/core/converter"
	"blogapi/src/core/domain"
	"blogapi/src/core/dto"
	"blogapi/src/core/ports"
)

// AlbumService handles album CRUD.
type AlbumService struct {
	albums ports.AlbumRepository
	users  ports.UserRepository
	conv   converter.AlbumConverter
	log    *slog.Logger
}

func NewAlbumService(albums ports.AlbumRepository, users ports.UserRepository, conv converter.AlbumConverter, log *slog.Logger) *AlbumService {
	return &AlbumService{albums: albums, users: users, conv: conv, log: log}
}

func (s *AlbumService) FindAll(ctx context.Context) ([]dto.AlbumDTO, error) {
	albums, err := s.albums.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlbumDTO, 0, len(albums))
	for i := range albums {
		out = append(out, *s.conv.ToDTO(&albums[i]))
	}
	return out, nil
}

func (s *AlbumService) FindByID(ctx context.Context, id int64) (*dto.AlbumDTO, error) {
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, domain.NewNotFoundError("album")
	}
	return s.conv.ToDTO(album), nil
}

// Save persists a new album for the given owner.
func (s *AlbumService) Save(ctx context.Context, d *dto.AlbumDTO, ownerID int64) (*dto.AlbumDTO, error) {
	if d == nil || strings.TrimSpace(d.ImageURL) == "" {
		return nil, domain.NewValidationError("imageUrl", "must not be empty")
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NewNotFoundError("user")
	}

	album := s.conv.ToEntity(d)
	album.ID = 0
	album.User = owner

	saved, err := s.albums.Save(ctx, album)
	if err != nil {
		return nil, err
	}
	s.log.Info("album created", "album_id", saved.ID, "user_id", owner.ID)
	return s.conv.ToDTO(saved), nil
}

// DeleteByID deletes an album after checking that the requester owns it.
func (s *AlbumService) DeleteByID(ctx context.Context, id int64, requesterEmail string) error {
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if album == nil {
		return domain.NewNotFoundError("album")
	}
	if album.User == nil || album.User.Email != requesterEmail {
		return domain.NewForbiddenError("only the album owner can delete it")
	}

	deleted, err := s.albums.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("album")
	}
	s.log.Info("album deleted", "album_id", id, "requester", requesterEmail)
	return nil
}
