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

// CommentService handles comment CRUD. A comment needs both its parent
// post and its author to exist; both references are resolved before
// anything is written.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	conv     converter.CommentConverter
	log      *slog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, conv converter.CommentConverter, log *slog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, conv: conv, log: log}
}

func (s *CommentService) FindAll(ctx context.Context) ([]dto.CommentDTO, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, *s.conv.ToDTO(&comments[i]))
	}
	return out, nil
}

func (s *CommentService) FindByID(ctx context.Context, id int64) (*dto.CommentDTO, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.NewNotFoundError("comment")
	}
	return s.conv.ToDTO(comment), nil
}

// FindByPost lists the comments under a post, oldest first.
func (s *CommentService) FindByPost(ctx context.Context, postID int64) ([]dto.CommentDTO, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NewNotFoundError("post")
	}
	comments, err := s.comments.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, *s.conv.ToDTO(&comments[i]))
	}
	return out, nil
}

// Save persists a new comment under the given post for the given author.
// Dangling post or user references are rejected before any write.
func (s *CommentService) Save(ctx context.Context, d *dto.CommentDTO, postID, authorID int64) (*dto.CommentDTO, error) {
	if d == nil || strings.TrimSpace(d.Text) == "" {
		return nil, domain.NewValidationError("text", "must not be empty")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NewNotFoundError("post")
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, domain.NewNotFoundError("user")
	}

	comment := s.conv.ToEntity(d)
	comment.ID = 0
	comment.Date = time.Now().UTC()
	comment.Post = post
	comment.User = author

	saved, err := s.comments.Save(ctx, comment)
	if err != nil {
		return nil, err
	}
	s.log.Info("comment created", "comment_id", saved.ID, "post_id", post.ID, "user_id", author.ID)
	return s.conv.ToDTO(saved), nil
}

// DeleteByID deletes a comment. Two identities may do so: the comment's
// author, or the owner of the post the comment sits under. Anyone else
// gets a forbidden error.
func (s *CommentService) DeleteByID(ctx context.Context, id int64, requesterEmail string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.NewNotFoundError("comment")
	}
	if !canDeleteComment(comment, requesterEmail) {
		return domain.NewForbiddenError("only the comment author or the post owner can delete it")
	}

	deleted, err := s.comments.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("comment")
	}
	s.log.Info("comment deleted", "comment_id", id, "requester", requesterEmail)
	return nil
}

func canDeleteComment(c *domain.Comment, requesterEmail string) bool {
	if c.User != nil && c.User.Email == requesterEmail {
		return true
	}
	if c.Post != nil && c.Post.User != nil && c.Post.User.Email == requesterEmail {
		return true
	}
	return false
}
