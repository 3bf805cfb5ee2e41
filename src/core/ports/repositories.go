// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
//
// Lookup methods return (nil, nil) when the row is absent. Interpreting
// absence — usually as a NotFound domain error — is the job of the services,
// not the repositories.
package ports

import (
	"context"

	"blogapi/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// Repositories bundles the per-aggregate repositories for wiring.
type Repositories struct {
	// Store backs the health check.
	Store    Repository
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
	Albums   AlbumRepository
}

// UserRepository persists User aggregates.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// PostRepository persists Post aggregates. Rows come back with the owning
// user populated.
type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// FindByTitle matches the title case-insensitively; when several posts
	// share a title the most recently created one wins.
	FindByTitle(ctx context.Context, title string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	Save(ctx context.Context, post *domain.Post) (*domain.Post, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// CommentRepository persists Comment aggregates. Rows come back with the
// parent post (including its owner) and the author populated.
type CommentRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindAll(ctx context.Context) ([]domain.Comment, error)
	FindByPostID(ctx context.Context, postID int64) ([]domain.Comment, error)
	Save(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// AlbumRepository persists Album aggregates.
type AlbumRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Album, error)
	FindAll(ctx context.Context) ([]domain.Album, error)
	Save(ctx context.Context, album *domain.Album) (*domain.Album, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
