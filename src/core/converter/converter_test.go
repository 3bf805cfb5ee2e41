package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/src/core/domain"
)

func TestUserConversionDropsPassword(t *testing.T) {
	conv := NewUserConverter()

	entity := &domain.User{ID: 1, Email: "erick@erick.com", Password: "secret-hash", Name: "Erick"}
	d := conv.ToDTO(entity)
	require.NotNil(t, d)
	assert.Equal(t, entity.ID, d.ID)
	assert.Equal(t, entity.Email, d.Email)
	assert.Equal(t, entity.Name, d.Name)

	back := conv.ToEntity(d)
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.Email, back.Email)
	assert.Empty(t, back.Password)
}

func TestPostConversionRoundTrip(t *testing.T) {
	conv := NewPostConverter(NewUserConverter())

	entity := &domain.Post{
		ID:       3,
		Title:    "Hi title",
		Body:     "Hi body",
		ImageURL: "stuffs.stuffs",
		Date:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		User:     &domain.User{ID: 1, Email: "erick@erick.com", Password: "hash"},
	}

	d := conv.ToDTO(entity)
	require.NotNil(t, d)
	require.NotNil(t, d.User)
	assert.Equal(t, "erick@erick.com", d.User.Email)

	back := conv.ToEntity(d)
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.Title, back.Title)
	assert.Equal(t, entity.Body, back.Body)
	assert.Equal(t, entity.ImageURL, back.ImageURL)
	assert.True(t, entity.Date.Equal(back.Date))
	require.NotNil(t, back.User)
	assert.Equal(t, entity.User.ID, back.User.ID)
}

func TestCommentConversionNested(t *testing.T) {
	userConv := NewUserConverter()
	conv := NewCommentConverter(NewPostConverter(userConv), userConv)

	entity := &domain.Comment{
		ID:   7,
		Text: "Testing of the comment",
		Date: time.Now().UTC(),
		Post: &domain.Post{
			ID:    1,
			Title: "Title Test",
			User:  &domain.User{ID: 1, Email: "erick@erick.com"},
		},
		User: &domain.User{ID: 2, Email: "author@a.com"},
	}

	d := conv.ToDTO(entity)
	require.NotNil(t, d)
	require.NotNil(t, d.Post)
	require.NotNil(t, d.Post.User)
	assert.Equal(t, "erick@erick.com", d.Post.User.Email)
	assert.Equal(t, "author@a.com", d.User.Email)

	back := conv.ToEntity(d)
	assert.Equal(t, entity.Text, back.Text)
	assert.Equal(t, entity.Post.ID, back.Post.ID)
	assert.Equal(t, entity.User.ID, back.User.ID)
}

// Converters are total over well-formed input: nil in, nil out, and a nil
// relation never becomes a default-constructed one.
func TestNilPropagation(t *testing.T) {
	userConv := NewUserConverter()
	postConv := NewPostConverter(userConv)
	commentConv := NewCommentConverter(postConv, userConv)
	albumConv := NewAlbumConverter(userConv)

	assert.Nil(t, userConv.ToDTO(nil))
	assert.Nil(t, userConv.ToEntity(nil))
	assert.Nil(t, postConv.ToDTO(nil))
	assert.Nil(t, postConv.ToEntity(nil))
	assert.Nil(t, commentConv.ToDTO(nil))
	assert.Nil(t, albumConv.ToDTO(nil))

	orphan := postConv.ToDTO(&domain.Post{ID: 1, Title: "no owner"})
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.User)

	back := postConv.ToEntity(orphan)
	assert.Nil(t, back.User)
}

func TestAlbumConversionRoundTrip(t *testing.T) {
	conv := NewAlbumConverter(NewUserConverter())

	entity := &domain.Album{
		ID:       2,
		ImageURL: "www.url-testing.com.br",
		User:     &domain.User{ID: 1, Email: "erick@erick.com"},
	}

	d := conv.ToDTO(entity)
	require.NotNil(t, d)
	assert.Equal(t, entity.ImageURL, d.ImageURL)

	back := conv.ToEntity(d)
	assert.Equal(t, entity.ID, back.ID)
	require.NotNil(t, back.User)
	assert.Equal(t, entity.User.Email, back.User.Email)
}
