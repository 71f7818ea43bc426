package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// UserHandler handles the admin-only user management surface.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	RoleID     int64  `json:"role_id" validate:"required"`
}

type updateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Password   string `json:"password" validate:"omitempty,min=8"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	RoleID     int64  `json:"role_id"`
	IsActive   *bool  `json:"is_active"`
}

// List handles GET /admin/users.
func (h *UserHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.UserFilters{
		Search:   c.QueryParam("search"),
		IsActive: queryBool(c, "is_active"),
		Role:     c.QueryParam("role"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "per_page"),
	})
	if err != nil {
		return err
	}
	return okPage(c, page.Items, page.Meta)
}

// Get handles GET /admin/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

// Create handles POST /admin/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.UserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Department: req.Department,
		RoleID:     req.RoleID,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, user)
}

// Update handles PUT /admin/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Department: req.Department,
		RoleID:     req.RoleID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

// Delete handles DELETE /admin/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return okMessage(c, http.StatusOK, "user deleted")
}

// Roles handles GET /admin/roles.
func (h *UserHandler) Roles(c echo.Context) error {
	roles, err := h.service.Roles(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, roles)
}
