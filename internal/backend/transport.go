package backend

import (
	"io"
	"net/http"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// authTransport attaches the context-carried token as a bearer credential to
// every outgoing request and converts an authorization-denied response into
// domain.ErrSessionExpired after invalidating the session. This is the single
// point where server-rejected credentials tear down a session; user-initiated
// logout goes through the session service instead.
type authTransport struct {
	next       http.RoundTripper
	invalidate ports.InvalidateFunc
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := ports.TokenFromContext(req.Context()); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		if t.invalidate != nil {
			if sid := ports.SessionIDFromContext(req.Context()); sid != "" {
				t.invalidate(req.Context(), sid, "token_rejected")
			}
		}
		return nil, domain.ErrSessionExpired
	}

	return resp, nil
}
