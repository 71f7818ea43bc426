package domain

// Identity holds the authorization-relevant attributes of the logged-in user,
// resolved from the session token via a profile fetch. It may lag behind the
// token while that fetch is pending or has failed.
type Identity struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// Session is an immutable per-request snapshot of the client-held session
// state: the bearer token plus the cached identity. Guards and handlers read
// it; only the session service mutates the underlying stores.
type Session struct {
	Token    string
	Identity *Identity
}

// Anonymous is the empty session used for unauthenticated requests.
var Anonymous = Session{}

// IsAuthenticated reports whether a token is present. This is a local check,
// not a validity guarantee against the backend.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsAdmin reports whether the resolved identity carries the admin flag.
// False while identity is unresolved.
func (s Session) IsAdmin() bool {
	return s.Identity != nil && s.Identity.IsAdmin
}

// HasRole reports whether the resolved identity holds the given role name.
func (s Session) HasRole(role string) bool {
	return s.Identity != nil && s.Identity.Role == role
}

// IsManager reports whether the identity holds the manager role.
func (s Session) IsManager() bool {
	return s.HasRole(RoleManager)
}

// IsUser reports whether the identity holds the plain user role.
func (s Session) IsUser() bool {
	return s.HasRole(RoleUser)
}

// CanManage reports whether the session may access management surfaces:
// admins always, managers by role.
func (s Session) CanManage() bool {
	return s.IsAdmin() || s.IsManager()
}
