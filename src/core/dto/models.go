// Package dto defines the wire representations of the domain aggregates.
// DTOs mirror their entities field for field, except that UserDTO never
// carries the password. Conversion lives in src/core/converter.
package dto

import "time"

// UserDTO is the wire form of a User. The password hash is deliberately
// absent; it must never leave the service layer.
type UserDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PostDTO is the wire form of a Post. Date is server-assigned on save.
type PostDTO struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	ImageURL string    `json:"imageUrl"`
	Date     time.Time `json:"date"`
	User     *UserDTO  `json:"user,omitempty"`
}

// CommentDTO is the wire form of a Comment.
type CommentDTO struct {
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
	Post *PostDTO  `json:"post,omitempty"`
	User *UserDTO  `json:"user,omitempty"`
}

// AlbumDTO is the wire form of an Album.
type AlbumDTO struct {
	ID       int64    `json:"id"`
	ImageURL string   `json:"imageUrl"`
	User     *UserDTO `json:"user,omitempty"`
}

// RegisterUserRequest is the payload for account registration. It is the
// only place a plaintext password crosses the wire; the service hashes it
// before anything is persisted.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}
