package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// UserService is a pass-through over the backend's admin user surface.
type UserService struct {
	users ports.UserAPI
	log   zerolog.Logger
}

func NewUserService(users ports.UserAPI, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context, filters ports.UserFilters) (*ports.UserPage, error) {
	return s.users.List(ctx, filters)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	user, err := s.users.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	return s.users.Update(ctx, id, input)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) Roles(ctx context.Context) ([]domain.Role, error) {
	return s.users.Roles(ctx)
}
