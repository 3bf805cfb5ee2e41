package domain

import "time"

// User represents an account. Email doubles as the authentication
// principal and must be unique. Password holds the bcrypt hash and is
// only ever read by the authentication layer.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
}

// Post represents a blog post. The owning User is set at creation and
// never reassigned.
type Post struct {
	ID       int64
	Title    string
	Body     string
	ImageURL string
	Date     time.Time
	User     *User
}

// Comment belongs to exactly one Post and one authoring User; it is
// meaningless without both.
type Comment struct {
	ID   int64
	Text string
	Date time.Time
	Post *Post
	User *User
}

// Album represents an image album owned by a User.
type Album struct {
	ID       int64
	ImageURL string
	User     *User
}
