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

// UserAPI implements ports.UserAPI against the backend's admin user endpoints.
type UserAPI struct {
	client *Client
}

func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

type userPayload struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	RoleID     int64  `json:"role_id,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

func newUserPayload(input ports.UserInput) userPayload {
	return userPayload{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		Phone:      input.Phone,
		Department: input.Department,
		RoleID:     input.RoleID,
		IsActive:   input.IsActive,
	}
}

func (u *UserAPI) List(ctx context.Context, filters ports.UserFilters) (*ports.UserPage, error) {
	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filters.IsActive))
	}
	if filters.Role != "" {
		query.Set("role", filters.Role)
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(filters.PerPage))
	}

	env, err := u.client.doEnvelope(ctx, http.MethodGet, "users", query, nil, nil)
	if err != nil {
		return nil, err
	}
	items, meta, err := decodePage[domain.User](env)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{Items: items, Meta: meta}, nil
}

func (u *UserAPI) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := u.client.do(ctx, http.MethodGet, userPath(id), nil, nil, &user); err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound)
	}
	return &user, nil
}

func (u *UserAPI) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := u.client.do(ctx, http.MethodPost, "users", nil, newUserPayload(input), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserAPI) Update(ctx context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := u.client.do(ctx, http.MethodPut, userPath(id), nil, newUserPayload(input), &user); err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound)
	}
	return &user, nil
}

func (u *UserAPI) Delete(ctx context.Context, id int64) error {
	if err := u.client.do(ctx, http.MethodDelete, userPath(id), nil, nil, nil); err != nil {
		return notFoundAs(err, domain.ErrUserNotFound)
	}
	return nil
}

func userPath(id int64) string {
	return fmt.Sprintf("users/%d", id)
}

func (u *UserAPI) Roles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := u.client.do(ctx, http.MethodGet, "roles", nil, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
