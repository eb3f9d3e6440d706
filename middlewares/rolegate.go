package middlewares

import "net/url"

// Redirect targets handed back to the frontend router.
const (
	LoginPath          = "/login"
	DefaultLandingPath = "/dashboard"
)

// Session is the caller's identity, passed explicitly so the gate stays a
// pure function.
type Session struct {
	Authenticated bool
	UserID        string
	Email         string
	Roles         []string
}

// Decision is the outcome of a gate check.
type Decision struct {
	Allowed    bool
	RedirectTo string // set only on deny
}

// HasAnyRole reports whether the session holds at least one of the required
// roles. An empty requirement admits any authenticated session.
func (s Session) HasAnyRole(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, have := range s.Roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// DecideAccess decides whether a session may reach a protected surface.
// Unauthenticated callers are sent to login with the requested path preserved
// for post-login return; authenticated callers without a matching role are
// sent to the default landing page instead.
func DecideAccess(requiredRoles []string, session Session, requestedPath string) Decision {
	if !session.Authenticated {
		target := LoginPath
		if requestedPath != "" {
			target += "?from=" + url.QueryEscape(requestedPath)
		}
		return Decision{Allowed: false, RedirectTo: target}
	}
	if !session.HasAnyRole(requiredRoles) {
		return Decision{Allowed: false, RedirectTo: DefaultLandingPath}
	}
	return Decision{Allowed: true}
}
