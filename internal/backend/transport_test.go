package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func TestAuthTransport_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 0, nil, discardLogger)
	ctx := ports.WithCredential(context.Background(), "sid-1", "tok-abc")

	var out struct {
		ID int64 `json:"id"`
	}
	if err := client.do(ctx, http.MethodGet, "auth/me", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("authorization header: %q", gotAuth)
	}
	if out.ID != 1 {
		t.Errorf("decoded payload: %+v", out)
	}
}

func TestAuthTransport_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 0, nil, discardLogger)
	if err := client.do(context.Background(), http.MethodGet, "spaces", nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("no credential in context, yet header sent: %q", gotAuth)
	}
}

func TestAuthTransport_RejectedCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Unauthenticated."}`))
	}))
	defer srv.Close()

	var invalidatedSID, invalidatedReason string
	invalidate := func(_ context.Context, sid, reason string) {
		invalidatedSID = sid
		invalidatedReason = reason
	}

	client := New(srv.URL, 0, invalidate, discardLogger)
	ctx := ports.WithCredential(context.Background(), "sid-9", "stale-token")

	err := client.do(ctx, http.MethodGet, "bookings", nil, nil, nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if invalidatedSID != "sid-9" {
		t.Errorf("invalidated session: %q", invalidatedSID)
	}
	if invalidatedReason != "token_rejected" {
		t.Errorf("invalidation reason: %q", invalidatedReason)
	}
}

func TestAuthTransport_RejectionWithoutSessionSkipsInvalidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	called := false
	client := New(srv.URL, 0, func(_ context.Context, _, _ string) { called = true }, discardLogger)

	// A login attempt with bad credentials also comes back 401, but there is
	// no session to tear down.
	err := client.do(context.Background(), http.MethodPost, "auth/login", nil, struct{}{}, nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if called {
		t.Error("invalidation must not run without a session ID")
	}
}
