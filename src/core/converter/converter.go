// Package converter provides pure, bidirectional mapping between DTOs and
// entities. Converters never validate and never reject input; a nil
// relation on one side is a nil relation on the other. Validation belongs
// to the services in src/core/usecase.
package converter

import (
	"blogapi/src/core/domain"
	"blogapi/src/core/dto"
)

// UserConverter maps User entities to and from their wire form. The
// password hash is dropped on the way out and left empty on the way in;
// only the authentication layer ever reads it.
type UserConverter struct{}

func NewUserConverter() UserConverter {
	return UserConverter{}
}

func (UserConverter) ToDTO(u *domain.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

func (UserConverter) ToEntity(d *dto.UserDTO) *domain.User {
	if d == nil {
		return nil
	}
	return &domain.User{
		ID:    d.ID,
		Email: d.Email,
		Name:  d.Name,
	}
}

// PostConverter maps Post entities, delegating the embedded owner to the
// user converter.
type PostConverter struct {
	users UserConverter
}

func NewPostConverter(users UserConverter) PostConverter {
	return PostConverter{users: users}
}

func (c PostConverter) ToDTO(p *domain.Post) *dto.PostDTO {
	if p == nil {
		return nil
	}
	return &dto.PostDTO{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		ImageURL: p.ImageURL,
		Date:     p.Date,
		User:     c.users.ToDTO(p.User),
	}
}

func (c PostConverter) ToEntity(d *dto.PostDTO) *domain.Post {
	if d == nil {
		return nil
	}
	return &domain.Post{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Body,
		ImageURL: d.ImageURL,
		Date:     d.Date,
		User:     c.users.ToEntity(d.User),
	}
}

// CommentConverter maps Comment entities, delegating the parent post and
// the author to their converters.
type CommentConverter struct {
	posts PostConverter
	users UserConverter
}

func NewCommentConverter(posts PostConverter, users UserConverter) CommentConverter {
	return CommentConverter{posts: posts, users: users}
}

func (c CommentConverter) ToDTO(m *domain.Comment) *dto.CommentDTO {
	if m == nil {
		return nil
	}
	return &dto.CommentDTO{
		ID:   m.ID,
		Text: m.Text,
		Date: m.Date,
		Post: c.posts.ToDTO(m.Post),
		User: c.users.ToDTO(m.User),
	}
}

func (c CommentConverter) ToEntity(d *dto.CommentDTO) *domain.Comment {
	if d == nil {
		return nil
	}
	return &domain.Comment{
		ID:   d.ID,
		Text: d.Text,
		Date: d.Date,
		Post: c.posts.ToEntity(d.Post),
		User: c.users.ToEntity(d.User),
	}
}

// AlbumConverter maps Album entities.
type AlbumConverter struct {
	users UserConverter
}

func NewAlbumConverter(users UserConverter) AlbumConverter {
	return AlbumConverter{users: users}
}

func (c AlbumConverter) ToDTO(a *domain.Album) *dto.AlbumDTO {
	if a == nil {
		return nil
	}
	return &dto.AlbumDTO{
		ID:       a.ID,
		ImageURL: a.ImageURL,
		User:     c.users.ToDTO(a.User),
	}
}

func (c AlbumConverter) ToEntity(d *dto.AlbumDTO) *domain.Album {
	if d == nil {
		return nil
	}
	return &domain.Album{
		ID:       d.ID,
		ImageURL: d.ImageURL,
		User:     c.users.ToEntity(d.User),
	}
}
