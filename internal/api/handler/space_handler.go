package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// SpaceHandler handles HTTP requests for browsing spaces and for the admin
// space management surface.
type SpaceHandler struct {
	service ports.SpaceService
}

func NewSpaceHandler(service ports.SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

type spaceRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=sala_reuniones oficina auditorio laboratorio espacio_coworking otro"`
	Capacity     int      `json:"capacity" validate:"required,gte=1"`
	PricePerHour float64  `json:"price_per_hour" validate:"gte=0"`
	Location     string   `json:"location" validate:"required"`
	Floor        string   `json:"floor"`
	Amenities    []string `json:"amenities"`
	ImageURL     string   `json:"image_url"`
	IsAvailable  bool     `json:"is_available"`
	Rules        string   `json:"rules"`
}

func (r spaceRequest) input() ports.SpaceInput {
	return ports.SpaceInput{
		Name:         r.Name,
		Description:  r.Description,
		Type:         domain.SpaceType(r.Type),
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Location:     r.Location,
		Floor:        r.Floor,
		Amenities:    r.Amenities,
		ImageURL:     r.ImageURL,
		IsAvailable:  r.IsAvailable,
		Rules:        r.Rules,
	}
}

// List handles GET /spaces with the browse filters.
func (h *SpaceHandler) List(c echo.Context) error {
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)
	page, err := h.service.List(c.Request().Context(), ports.SpaceFilters{
		Type:        c.QueryParam("type"),
		IsAvailable: queryBool(c, "is_available"),
		MinCapacity: queryInt(c, "min_capacity"),
		MaxPrice:    maxPrice,
		Search:      c.QueryParam("search"),
		Page:        queryInt(c, "page"),
		PerPage:     queryInt(c, "per_page"),
	})
	if err != nil {
		return err
	}
	return okPage(c, page.Items, page.Meta)
}

// Get handles GET /spaces/:id.
func (h *SpaceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	space, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, space)
}

// Create handles POST /admin/spaces.
func (h *SpaceHandler) Create(c echo.Context) error {
	var req spaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	space, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, space)
}

// Update handles PUT /admin/spaces/:id.
func (h *SpaceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req spaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	space, err := h.service.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, space)
}

// Delete handles DELETE /admin/spaces/:id (soft delete).
func (h *SpaceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return okMessage(c, http.StatusOK, "space deleted")
}
