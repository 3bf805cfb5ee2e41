package usecase

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"blogapi/src/core/converter"
	"blogapi/src/core/domain"
	"blogapi/src/core/dto"
	"blogapi/src/core/ports"
)

// UserService handles account registration, lookup, and deletion. It also
// backs the basic-auth middleware via Authenticate.
type UserService struct {
	users ports.UserRepository
	conv  converter.UserConverter
	log   *slog.Logger
}

func NewUserService(users ports.UserRepository, conv converter.UserConverter, log *slog.Logger) *UserService {
	return &UserService{users: users, conv: conv, log: log}
}

func (s *UserService) FindAll(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *s.conv.ToDTO(&users[i]))
	}
	return out, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return s.conv.ToDTO(user), nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*dto.UserDTO, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}
	return s.conv.ToDTO(user), nil
}

// Register creates a new account. The plaintext password is hashed here
// and never stored or returned.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserDTO, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}
	if req.Password == "" {
		return nil, domain.NewValidationError("password", "must not be empty")
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, &domain.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", saved.ID, "email", saved.Email)
	return s.conv.ToDTO(saved), nil
}

// Authenticate verifies basic-auth credentials and returns the account
// email on success. Unknown accounts and wrong passwords produce the same
// unauthorized error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.NewUnauthorizedError("invalid credentials")
	}
	return user.Email, nil
}

// DeleteByID removes an account; only the account holder may do it.
func (s *UserService) DeleteByID(ctx context.Context, id int64, requesterEmail string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("user")
	}
	if user.Email != requesterEmail {
		return domain.NewForbiddenError("accounts can only be deleted by their owner")
	}

	deleted, err := s.users.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("user")
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}
