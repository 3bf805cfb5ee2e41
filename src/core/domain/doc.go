// Package domain contains the core domain model for the blog.
//
// This package defines:
//   - Entities: User, Post, Comment, Album
//   - Domain Errors: business rule violation errors with a kind discriminator
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Ownership is the central invariant: every Post, Comment, and Album
// references exactly one owning User, set at creation time. Services in
// src/core/usecase enforce this; entities here are plain records.
package domain
