package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/api/metrics"
	"github.com/OscarMG4/space-booking-app/internal/api/middleware"
	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// CookieOptions controls the session cookie the gateway issues. The backend
// token itself never reaches the browser; only the opaque session ID does.
type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	sessions ports.SessionService
	cookie   CookieOptions
}

func NewAuthHandler(sessions ports.SessionService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Phone                string `json:"phone"`
	Department           string `json:"department"`
}

type identityResponse struct {
	User *domain.Identity `json:"user"`
}

// LoginPrompt is the landing target for guard redirects. It tells the caller
// how to authenticate instead of answering 404 after a redirect.
func (h *AuthHandler) LoginPrompt(c echo.Context) error {
	return okMessage(c, http.StatusOK, "authentication required, post credentials to /auth/login")
}

// Login authenticates against the backend and establishes a gateway session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid, session, err := h.sessions.Login(c.Request().Context(), ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// The backend answers a bad login with the same authorization-denied
		// status the transport maps to a session rejection; here there was no
		// session to tear down, so surface it as a credential failure.
		if errors.Is(err, domain.ErrSessionExpired) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, sid)
	return ok(c, http.StatusOK, identityResponse{User: session.Identity})
}

// Register creates an account and logs the new user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid, session, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Phone:                req.Phone,
		Department:           req.Department,
	})
	if err != nil {
		return err
	}

	h.setSessionCookie(c, sid)
	return ok(c, http.StatusCreated, identityResponse{User: session.Identity})
}

// Logout clears the gateway session and the cookie. Local teardown always
// succeeds; server-side token revocation is best-effort inside the service.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context(), middleware.SessionID(c))
	metrics.SessionInvalidationsTotal.WithLabelValues("logout").Inc()
	h.clearSessionCookie(c)
	return okMessage(c, http.StatusOK, "logged out")
}

// Refresh swaps the stored backend token for a fresh one.
func (h *AuthHandler) Refresh(c echo.Context) error {
	_, sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	session, err := h.sessions.Refresh(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, identityResponse{User: session.Identity})
}

// Me returns the authoritative profile for the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	_, sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	user, err := h.sessions.Profile(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sid string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
