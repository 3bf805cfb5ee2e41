// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository is responsible for a specific domain aggregate.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., post_repo.go, user_repo.go)
//   - Types: <Entity>Repository (e.g., PostRepository, UserRepository)
//
// All repositories receive the database pool via constructor injection.
// Lookups return (nil, nil) for absent rows; translating absence into a
// domain error is the service layer's job.
package repo
