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

func newUserFixture() (*UserService, *fakeUserRepo) {
	users := newFakeUserRepo()
	svc := NewUserService(users, converter.NewUserConverter(), testLogger())
	return svc, users
}

func TestUserRegisterHashesPassword(t *testing.T) {
	svc, users := newUserFixture()
	ctx := context.Background()

	saved, err := svc.Register(ctx, &dto.RegisterUserRequest{
		Email: "erick@erick.com", Password: "password", Name: "Erick",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	stored, err := users.FindByEmail(ctx, "erick@erick.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password", stored.Password)

	email, err := svc.Authenticate(ctx, "erick@erick.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "erick@erick.com", email)
}

func TestUserRegisterValidation(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "not-an-email", Password: "p"})
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Register(ctx, &dto.RegisterUserRequest{Email: "a@b.com", Password: ""})
	assert.True(t, domain.IsValidationError(err))
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "a@b.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterUserRequest{Email: "a@b.com", Password: "p"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestUserAuthenticateFailures(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "a@b.com", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@b.com", "wrong")
	assert.True(t, domain.IsUnauthorized(err))

	_, err = svc.Authenticate(ctx, "nobody@b.com", "right")
	assert.True(t, domain.IsUnauthorized(err))
}

func TestUserDeleteSelfOnly(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	saved, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "a@b.com", Password: "p"})
	require.NoError(t, err)

	err = svc.DeleteByID(ctx, saved.ID, "other@b.com")
	assert.True(t, domain.IsForbidden(err))

	require.NoError(t, svc.DeleteByID(ctx, saved.ID, "a@b.com"))

	err = svc.DeleteByID(ctx, saved.ID, "a@b.com")
	assert.True(t, domain.IsNotFound(err))
}

func TestUserDTONeverCarriesPassword(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	saved, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "a@b.com", Password: "p", Name: "A"})
	require.NoError(t, err)

	got, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "A", got.Name)
	// UserDTO has no password field at all; nothing more to assert here,
	// the type system enforces it.
}
