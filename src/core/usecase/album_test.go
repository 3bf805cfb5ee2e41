package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/src/core/converter"
	"blogapi/src/core/domain"
	"blogapi/src/core/dto"
)

func newAlbumFixture() (*AlbumService, *fakeAlbumRepo, *fakeUserRepo) {
	users := newFakeUserRepo()
	albums := newFakeAlbumRepo()
	conv := converter.NewAlbumConverter(converter.NewUserConverter())
	svc := NewAlbumService(albums, users, conv, testLogger())
	return svc, albums, users
}

func TestAlbumSaveAndFind(t *testing.T) {
	svc, _, users := newAlbumFixture()
	ctx := context.Background()
	owner := seedUser(t, users, "erick@erick.com")

	saved, err := svc.Save(ctx, &dto.AlbumDTO{ImageURL: "www.url-testing.com.br"}, owner.ID)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	require.NotNil(t, saved.User)
	assert.Equal(t, owner.Email, saved.User.Email)

	got, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ImageURL, got.ImageURL)
}

func TestAlbumSaveMissingOwner(t *testing.T) {
	svc, albums, _ := newAlbumFixture()
	ctx := context.Background()

	_, err := svc.Save(ctx, &dto.AlbumDTO{ImageURL: "x"}, 9)
	assert.True(t, domain.IsNotFound(err))

	all, err := albums.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAlbumSaveValidation(t *testing.T) {
	svc, _, users := newAlbumFixture()
	owner := seedUser(t, users, "erick@erick.com")

	_, err := svc.Save(context.Background(), &dto.AlbumDTO{ImageURL: ""}, owner.ID)
	assert.True(t, domain.IsValidationError(err))
}

func TestAlbumDeleteAuthorization(t *testing.T) {
	svc, _, users := newAlbumFixture()
	ctx := context.Background()
	owner := seedUser(t, users, "erick@erick.com")

	saved, err := svc.Save(ctx, &dto.AlbumDTO{ImageURL: "x"}, owner.ID)
	require.NoError(t, err)

	err = svc.DeleteByID(ctx, saved.ID, "stranger@x.com")
	assert.True(t, domain.IsForbidden(err))

	require.NoError(t, svc.DeleteByID(ctx, saved.ID, owner.Email))

	err = svc.DeleteByID(ctx, saved.ID, owner.Email)
	assert.True(t, domain.IsNotFound(err))
}
