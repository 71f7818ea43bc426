package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// SpaceService is a pass-through over the backend's space surface; space
// validity rules (availability, pricing) live server-side.
type SpaceService struct {
	spaces ports.SpaceAPI
	log    zerolog.Logger
}

func NewSpaceService(spaces ports.SpaceAPI, log zerolog.Logger) *SpaceService {
	return &SpaceService{spaces: spaces, log: log}
}

func (s *SpaceService) List(ctx context.Context, filters ports.SpaceFilters) (*ports.SpacePage, error) {
	return s.spaces.List(ctx, filters)
}

func (s *SpaceService) Get(ctx context.Context, id int64) (*domain.Space, error) {
	return s.spaces.Get(ctx, id)
}

func (s *SpaceService) Create(ctx context.Context, input ports.SpaceInput) (*domain.Space, error) {
	space, err := s.spaces.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("space_id", space.ID).Str("name", space.Name).Msg("space created")
	return space, nil
}

func (s *SpaceService) Update(ctx context.Context, id int64, input ports.SpaceInput) (*domain.Space, error) {
	return s.spaces.Update(ctx, id, input)
}

func (s *SpaceService) Delete(ctx context.Context, id int64) error {
	if err := s.spaces.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("space_id", id).Msg("space deleted")
	return nil
}
