package domain

import "testing"

func authedSession(role string, admin bool) Session {
	return Session{
		Token:    "tok",
		Identity: &Identity{UserID: 1, Role: role, IsAdmin: admin},
	}
}

func TestEvaluate_Guest(t *testing.T) {
	if d := Evaluate(Anonymous, RequireGuest); !d.Allowed {
		t.Errorf("anonymous must pass guest guard, got %+v", d)
	}
	if d := Evaluate(authedSession(RoleUser, false), RequireGuest); d.Allowed || d.RedirectTo != LandingRoute {
		t.Errorf("authenticated session must be sent to %s, got %+v", LandingRoute, d)
	}
}

func TestEvaluate_Authenticated(t *testing.T) {
	if d := Evaluate(Anonymous, RequireAuthenticated); d.Allowed || d.RedirectTo != LoginRoute {
		t.Errorf("anonymous must be sent to %s, got %+v", LoginRoute, d)
	}
	if d := Evaluate(authedSession(RoleUser, false), RequireAuthenticated); !d.Allowed {
		t.Errorf("authenticated session must pass, got %+v", d)
	}
	// A token without a resolved identity is still authenticated.
	if d := Evaluate(Session{Token: "tok"}, RequireAuthenticated); !d.Allowed {
		t.Errorf("token-only session must pass, got %+v", d)
	}
}

func TestEvaluate_Admin(t *testing.T) {
	cases := []struct {
		name     string
		s        Session
		allowed  bool
		redirect string
	}{
		{"anonymous", Anonymous, false, LoginRoute},
		{"plain user", authedSession(RoleUser, false), false, LandingRoute},
		{"manager without admin flag", authedSession(RoleManager, false), false, LandingRoute},
		{"admin flag", authedSession(RoleAdmin, true), true, ""},
		{"token without identity", Session{Token: "tok"}, false, LandingRoute},
	}
	for _, tc := range cases {
		d := Evaluate(tc.s, RequireAdmin)
		if d.Allowed != tc.allowed || d.RedirectTo != tc.redirect {
			t.Errorf("%s: got %+v, want allowed=%v redirect=%q", tc.name, d, tc.allowed, tc.redirect)
		}
	}
}

func TestEvaluate_Manager(t *testing.T) {
	cases := []struct {
		name     string
		s        Session
		allowed  bool
		redirect string
	}{
		{"anonymous", Anonymous, false, LoginRoute},
		{"plain user", authedSession(RoleUser, false), false, LandingRoute},
		{"manager role", authedSession(RoleManager, false), true, ""},
		{"admin flag with any role", authedSession(RoleAdmin, true), true, ""},
	}
	for _, tc := range cases {
		d := Evaluate(tc.s, RequireManager)
		if d.Allowed != tc.allowed || d.RedirectTo != tc.redirect {
			t.Errorf("%s: got %+v, want allowed=%v redirect=%q", tc.name, d, tc.allowed, tc.redirect)
		}
	}
}

// Unauthenticated checks take precedence over role checks, so the redirect
// target tells the user to log in rather than bouncing to the landing page.
func TestEvaluate_LoginPrecedesRoleDenial(t *testing.T) {
	for _, req := range []Requirement{RequireAdmin, RequireManager} {
		if d := Evaluate(Anonymous, req); d.RedirectTo != LoginRoute {
			t.Errorf("requirement %d: got redirect %q, want %q", req, d.RedirectTo, LoginRoute)
		}
	}
}
