package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"blogapi/src/core/converter"
	"blogapi/src/core/domain"
	"blogapi/src/core/dto"
	"blogapi/src/core/ports"
)

// PostService handles post CRUD. It owns the existence and ownership
// checks; conversion to and from the wire form happens at its boundary.
type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	conv  converter.PostConverter
	log   *slog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, conv converter.PostConverter, log *slog.Logger) *PostService {
	return &PostService{posts: posts, users: users, conv: conv, log: log}
}

func (s *PostService) FindAll(ctx context.Context) ([]dto.PostDTO, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostDTO, 0, len(posts))
	for i := range posts {
		out = append(out, *s.conv.ToDTO(&posts[i]))
	}
	return out, nil
}

func (s *PostService) FindByID(ctx context.Context, id int64) (*dto.PostDTO, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NewNotFoundError("post")
	}
	return s.conv.ToDTO(post), nil
}

// FindByTitle matches case-insensitively; with several posts sharing a
// title the repository returns the most recent one.
func (s *PostService) FindByTitle(ctx context.Context, title string) (*dto.PostDTO, error) {
	post, err := s.posts.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NewNotFoundError("post")
	}
	return s.conv.ToDTO(post), nil
}

// Save persists a new post for the given owner. The owner comes from an
// explicit parameter, never from the DTO body, and the id and date are
// server-assigned regardless of what the client sent.
func (s *PostService) Save(ctx context.Context, d *dto.PostDTO, ownerID int64) (*dto.PostDTO, error) {
	if d == nil || strings.TrimSpace(d.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(d.Body) == "" {
		return nil, domain.NewValidationError("body", "must not be empty")
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NewNotFoundError("user")
	}

	post := s.conv.ToEntity(d)
	post.ID = 0
	post.Date = time.Now().UTC()
	post.User = owner

	saved, err := s.posts.Save(ctx, post)
	if err != nil {
		return nil, err
	}
	s.log.Info("post created", "post_id", saved.ID, "user_id", owner.ID)
	return s.conv.ToDTO(saved), nil
}

// DeleteByID deletes a post after checking that the requester owns it.
// Comments on the post go with it (schema cascade).
func (s *PostService) DeleteByID(ctx context.Context, id int64, requesterEmail string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.NewNotFoundError("post")
	}
	if post.User == nil || post.User.Email != requesterEmail {
		return domain.NewForbiddenError("only the post owner can delete it")
	}

	deleted, err := s.posts.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("post")
	}
	s.log.Info("post deleted", "post_id", id, "requester", requesterEmail)
	return nil
}
