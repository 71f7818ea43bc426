package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

type stubSessionService struct {
	sessions    map[string]domain.Session
	resolvedSID string
}

func (s *stubSessionService) Resolve(_ context.Context, sid string) domain.Session {
	s.resolvedSID = sid
	return s.sessions[sid]
}

func (s *stubSessionService) Login(_ context.Context, _ ports.Credentials) (string, domain.Session, error) {
	return "", domain.Anonymous, nil
}

func (s *stubSessionService) Register(_ context.Context, _ ports.RegisterInput) (string, domain.Session, error) {
	return "", domain.Anonymous, nil
}

func (s *stubSessionService) Logout(_ context.Context, _ string) {}

func (s *stubSessionService) Refresh(_ context.Context, _ string) (domain.Session, error) {
	return domain.Anonymous, nil
}

func (s *stubSessionService) Invalidate(_ context.Context, _, _ string) {}

func (s *stubSessionService) Profile(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrSessionExpired
}

func TestSession_ResolvesCookieAndInjectsCredential(t *testing.T) {
	stub := &stubSessionService{sessions: map[string]domain.Session{
		"sid-1": {Token: "tok", Identity: &domain.Identity{UserID: 3}},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "sb_session", Value: "sid-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenToken, seenSID string
	handler := Session(stub, "sb_session")(func(c echo.Context) error {
		seenToken = ports.TokenFromContext(c.Request().Context())
		seenSID = ports.SessionIDFromContext(c.Request().Context())
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if stub.resolvedSID != "sid-1" {
		t.Errorf("resolved sid: %q", stub.resolvedSID)
	}
	if got := SessionFromContext(c); got.Identity == nil || got.Identity.UserID != 3 {
		t.Errorf("session snapshot: %+v", got)
	}
	if SessionID(c) != "sid-1" {
		t.Errorf("session id: %q", SessionID(c))
	}
	if seenToken != "tok" || seenSID != "sid-1" {
		t.Errorf("request context credential: token=%q sid=%q", seenToken, seenSID)
	}
}

func TestSession_NoCookieResolvesAnonymous(t *testing.T) {
	stub := &stubSessionService{sessions: map[string]domain.Session{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/spaces", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(stub, "sb_session")(func(c echo.Context) error {
		if token := ports.TokenFromContext(c.Request().Context()); token != "" {
			t.Errorf("anonymous request must not carry a credential, got %q", token)
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if SessionFromContext(c).IsAuthenticated() {
		t.Error("expected anonymous session")
	}
}
