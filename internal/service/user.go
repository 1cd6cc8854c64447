package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/lightbnb/internal/model"
)

type UserService struct {
	logger *zerolog.Logger
	users  userStore
	cost   int
}

func NewUserService(logger *zerolog.Logger, users userStore) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
		cost:   bcrypt.DefaultCost,
	}
}

// Register hashes the plaintext password and stores the new user.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}

	user, err := s.users.AddUser(ctx, model.NewUser{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("user registered")

	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetUserByID(ctx, id)
}
