package backend

import (
	"context"
	"net/http"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// AuthAPI implements ports.AuthAPI against the backend's auth endpoints.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Phone                string `json:"phone,omitempty"`
	Department           string `json:"department,omitempty"`
}

func (a *AuthAPI) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthSession, error) {
	var session ports.AuthSession
	payload := loginPayload{Email: creds.Email, Password: creds.Password}
	if err := a.client.do(ctx, http.MethodPost, "auth/login", nil, payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *AuthAPI) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthSession, error) {
	var session ports.AuthSession
	payload := registerPayload{
		Name:                 input.Name,
		Email:                input.Email,
		Password:             input.Password,
		PasswordConfirmation: input.PasswordConfirmation,
		Phone:                input.Phone,
		Department:           input.Department,
	}
	if err := a.client.do(ctx, http.MethodPost, "auth/register", nil, payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "auth/logout", nil, struct{}{}, nil)
}

func (a *AuthAPI) Refresh(ctx context.Context) (*ports.AuthSession, error) {
	var session ports.AuthSession
	if err := a.client.do(ctx, http.MethodPost, "auth/refresh", nil, struct{}{}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *AuthAPI) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.client.do(ctx, http.MethodGet, "auth/me", nil, nil, &user); err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound)
	}
	return &user, nil
}
