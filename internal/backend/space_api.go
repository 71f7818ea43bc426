package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// SpaceAPI implements ports.SpaceAPI against the backend's space endpoints.
type SpaceAPI struct {
	client *Client
}

func NewSpaceAPI(client *Client) *SpaceAPI {
	return &SpaceAPI{client: client}
}

type spacePayload struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Type         domain.SpaceType `json:"type"`
	Capacity     int              `json:"capacity"`
	PricePerHour float64          `json:"price_per_hour"`
	Location     string           `json:"location"`
	Floor        string           `json:"floor,omitempty"`
	Amenities    []string         `json:"amenities,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	IsAvailable  bool             `json:"is_available"`
	Rules        string           `json:"rules,omitempty"`
}

func newSpacePayload(input ports.SpaceInput) spacePayload {
	return spacePayload{
		Name:         input.Name,
		Description:  input.Description,
		Type:         input.Type,
		Capacity:     input.Capacity,
		PricePerHour: input.PricePerHour,
		Location:     input.Location,
		Floor:        input.Floor,
		Amenities:    input.Amenities,
		ImageURL:     input.ImageURL,
		IsAvailable:  input.IsAvailable,
		Rules:        input.Rules,
	}
}

func (s *SpaceAPI) List(ctx context.Context, filters ports.SpaceFilters) (*ports.SpacePage, error) {
	query := url.Values{}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.IsAvailable != nil {
		query.Set("is_available", strconv.FormatBool(*filters.IsAvailable))
	}
	if filters.MinCapacity > 0 {
		query.Set("min_capacity", strconv.Itoa(filters.MinCapacity))
	}
	if filters.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filters.MaxPrice, 'f', -1, 64))
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(filters.PerPage))
	}

	env, err := s.client.doEnvelope(ctx, http.MethodGet, "spaces", query, nil, nil)
	if err != nil {
		return nil, err
	}
	items, meta, err := decodePage[domain.Space](env)
	if err != nil {
		return nil, err
	}
	return &ports.SpacePage{Items: items, Meta: meta}, nil
}

func (s *SpaceAPI) Get(ctx context.Context, id int64) (*domain.Space, error) {
	var space domain.Space
	if err := s.client.do(ctx, http.MethodGet, spacePath(id), nil, nil, &space); err != nil {
		return nil, notFoundAs(err, domain.ErrSpaceNotFound)
	}
	return &space, nil
}

func (s *SpaceAPI) Create(ctx context.Context, input ports.SpaceInput) (*domain.Space, error) {
	var space domain.Space
	if err := s.client.do(ctx, http.MethodPost, "spaces", nil, newSpacePayload(input), &space); err != nil {
		return nil, err
	}
	return &space, nil
}

func (s *SpaceAPI) Update(ctx context.Context, id int64, input ports.SpaceInput) (*domain.Space, error) {
	var space domain.Space
	if err := s.client.do(ctx, http.MethodPut, spacePath(id), nil, newSpacePayload(input), &space); err != nil {
		return nil, notFoundAs(err, domain.ErrSpaceNotFound)
	}
	return &space, nil
}

func (s *SpaceAPI) Delete(ctx context.Context, id int64) error {
	if err := s.client.do(ctx, http.MethodDelete, spacePath(id), nil, nil, nil); err != nil {
		return notFoundAs(err, domain.ErrSpaceNotFound)
	}
	return nil
}

func spacePath(id int64) string {
	return fmt.Sprintf("spaces/%d", id)
}
