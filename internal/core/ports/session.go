package ports

import (
	"context"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// TokenStore persists the durable session credential under an opaque session
// ID. Implementations must treat a missing entry as an empty token, not an
// error, and must tolerate an absent backing store by degrading to no-ops.
type TokenStore interface {
	Set(ctx context.Context, sid, token string) error
	// Get returns the stored token, or "" when none is present.
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// IdentityStore caches the identity resolved from a session's token so route
// guards never need a network round-trip.
type IdentityStore interface {
	Set(ctx context.Context, sid string, identity domain.Identity) error
	// Get returns the cached identity, or nil when none is present.
	Get(ctx context.Context, sid string) (*domain.Identity, error)
	Delete(ctx context.Context, sid string) error
}

// SessionService owns the session lifecycle: populate on login/registration,
// resolve on each request, clear on logout or credential rejection.
type SessionService interface {
	// Resolve builds the session snapshot for a request. A stored token with
	// no cached identity triggers a profile fetch; if that fetch fails the
	// session is fully cleared and the anonymous session returned.
	Resolve(ctx context.Context, sid string) domain.Session

	// Login exchanges credentials for a backend session and stores token and
	// identity atomically under a fresh session ID.
	Login(ctx context.Context, creds Credentials) (string, domain.Session, error)

	// Register creates an account and establishes the session like Login.
	Register(ctx context.Context, input RegisterInput) (string, domain.Session, error)

	// Logout clears local session state first, then best-effort revokes the
	// token server-side; revocation failures are ignored.
	Logout(ctx context.Context, sid string)

	// Refresh exchanges the stored token for a fresh one.
	Refresh(ctx context.Context, sid string) (domain.Session, error)

	// Invalidate removes token and identity for a session. It is the hook the
	// outbound transport calls when the backend rejects the credential.
	Invalidate(ctx context.Context, sid, reason string)

	// Profile returns the authoritative profile for the current session.
	Profile(ctx context.Context, sid string) (*domain.User, error)
}
