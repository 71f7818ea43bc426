package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// SessionService owns all session state: the durable token, the cached
// identity resolved from it, and the lifecycle that keeps the two consistent.
// It is the single writer for both stores; everything else reads immutable
// per-request snapshots.
type SessionService struct {
	auth       ports.AuthAPI
	tokens     ports.TokenStore
	identities ports.IdentityStore
	log        zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, tokens ports.TokenStore, identities ports.IdentityStore, log zerolog.Logger) *SessionService {
	return &SessionService{auth: auth, tokens: tokens, identities: identities, log: log}
}

// Resolve builds the session snapshot for one request. A stored token with no
// cached identity triggers a profile fetch; failure of that fetch clears the
// whole session so it never looks authenticated without a valid identity.
func (s *SessionService) Resolve(ctx context.Context, sid string) domain.Session {
	if sid == "" {
		return domain.Anonymous
	}

	token, err := s.tokens.Get(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Msg("token store unavailable")
		return domain.Anonymous
	}
	if token == "" {
		return domain.Anonymous
	}
	if tokenExpired(token) {
		s.Invalidate(ctx, sid, "token_expired")
		return domain.Anonymous
	}

	identity, err := s.identities.Get(ctx, sid)
	if err == nil && identity != nil {
		return domain.Session{Token: token, Identity: identity}
	}

	user, err := s.auth.Me(ports.WithCredential(ctx, sid, token))
	if err != nil {
		s.log.Info().Err(err).Msg("profile fetch failed, clearing session")
		s.Invalidate(ctx, sid, "profile_fetch_failed")
		return domain.Anonymous
	}

	resolved := identityOf(user)
	if err := s.identities.Set(ctx, sid, resolved); err != nil {
		s.log.Warn().Err(err).Msg("identity cache write failed")
	}
	return domain.Session{Token: token, Identity: &resolved}
}

// Login exchanges credentials for a backend session. Token and identity are
// stored together under a fresh session ID, so a later login can never carry
// stale identity from a previous session.
func (s *SessionService) Login(ctx context.Context, creds ports.Credentials) (string, domain.Session, error) {
	auth, err := s.auth.Login(ctx, creds)
	if err != nil {
		return "", domain.Anonymous, err
	}
	return s.establish(ctx, auth)
}

// Register creates an account and establishes the session exactly like Login.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (string, domain.Session, error) {
	auth, err := s.auth.Register(ctx, input)
	if err != nil {
		return "", domain.Anonymous, err
	}
	return s.establish(ctx, auth)
}

// Logout clears local state first, then best-effort revokes the token
// server-side. Revocation failure is logged and otherwise ignored.
func (s *SessionService) Logout(ctx context.Context, sid string) {
	token, _ := s.tokens.Get(ctx, sid)
	s.Invalidate(ctx, sid, "logout")
	if token == "" {
		return
	}
	if err := s.auth.Logout(ports.WithCredential(ctx, sid, token)); err != nil {
		s.log.Debug().Err(err).Msg("server-side logout failed")
	}
}

// Refresh exchanges the stored token for a fresh one and replaces it in the
// store. The cached identity is kept; it belongs to the same user.
func (s *SessionService) Refresh(ctx context.Context, sid string) (domain.Session, error) {
	token, err := s.tokens.Get(ctx, sid)
	if err != nil || token == "" {
		return domain.Anonymous, domain.ErrSessionExpired
	}

	auth, err := s.auth.Refresh(ports.WithCredential(ctx, sid, token))
	if err != nil {
		return domain.Anonymous, err
	}
	if err := s.tokens.Set(ctx, sid, auth.Token); err != nil {
		s.log.Warn().Err(err).Msg("token store write failed")
	}

	identity, _ := s.identities.Get(ctx, sid)
	return domain.Session{Token: auth.Token, Identity: identity}, nil
}

// Invalidate removes token and identity for a session in one step. It is
// idempotent; the outbound transport may call it for a session that a
// concurrent request already cleared.
func (s *SessionService) Invalidate(ctx context.Context, sid, reason string) {
	if sid == "" {
		return
	}
	if err := s.tokens.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Msg("token delete failed")
	}
	if err := s.identities.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Msg("identity delete failed")
	}
	s.log.Info().Str("reason", reason).Msg("session invalidated")
}

// Profile fetches the authoritative profile for the session and refreshes the
// identity cache from it.
func (s *SessionService) Profile(ctx context.Context, sid string) (*domain.User, error) {
	token, err := s.tokens.Get(ctx, sid)
	if err != nil || token == "" {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.auth.Me(ports.WithCredential(ctx, sid, token))
	if err != nil {
		return nil, err
	}

	identity := identityOf(user)
	if err := s.identities.Set(ctx, sid, identity); err != nil {
		s.log.Warn().Err(err).Msg("identity cache write failed")
	}
	return user, nil
}

func (s *SessionService) establish(ctx context.Context, auth *ports.AuthSession) (string, domain.Session, error) {
	sid := uuid.NewString()
	identity := identityOf(&auth.User)

	if err := s.tokens.Set(ctx, sid, auth.Token); err != nil {
		return "", domain.Anonymous, err
	}
	if err := s.identities.Set(ctx, sid, identity); err != nil {
		s.log.Warn().Err(err).Msg("identity cache write failed")
	}

	s.log.Info().Int64("user_id", identity.UserID).Str("role", identity.Role).Msg("session established")
	return sid, domain.Session{Token: auth.Token, Identity: &identity}, nil
}

func identityOf(user *domain.User) domain.Identity {
	return domain.Identity{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		IsAdmin: user.IsAdmin,
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Tokens that are not parseable
// JWTs are treated as opaque and left for the backend to rule on.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
