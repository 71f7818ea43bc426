package domain

// Requirement is the access level a route demands before entry.
type Requirement int

const (
	// RequireGuest allows only unauthenticated sessions (login, register).
	RequireGuest Requirement = iota
	// RequireAuthenticated allows any session holding a token.
	RequireAuthenticated
	// RequireAdmin allows only sessions whose identity carries the admin flag.
	RequireAdmin
	// RequireManager allows admins and manager-role identities.
	RequireManager
)

// Route targets used by redirect decisions.
const (
	LoginRoute   = "/auth/login"
	LandingRoute = "/spaces"
)

// Decision is the outcome of a policy evaluation: either entry is allowed or
// the caller must be redirected to RedirectTo.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

var allowed = Decision{Allowed: true}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Evaluate applies the route-entry policy to a session snapshot. It is a pure
// synchronous function: no I/O, no side effects. The guard layer performs the
// actual redirect.
func Evaluate(s Session, req Requirement) Decision {
	switch req {
	case RequireGuest:
		if s.IsAuthenticated() {
			return redirect(LandingRoute)
		}
		return allowed
	case RequireAuthenticated:
		if !s.IsAuthenticated() {
			return redirect(LoginRoute)
		}
		return allowed
	case RequireAdmin:
		if !s.IsAuthenticated() {
			return redirect(LoginRoute)
		}
		if !s.IsAdmin() {
			return redirect(LandingRoute)
		}
		return allowed
	case RequireManager:
		if !s.IsAuthenticated() {
			return redirect(LoginRoute)
		}
		if !s.CanManage() {
			return redirect(LandingRoute)
		}
		return allowed
	}
	return redirect(LoginRoute)
}
