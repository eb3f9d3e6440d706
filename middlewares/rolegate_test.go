package middlewares

import (
	"reflect"
	"testing"
)

func TestDecideAccessUnauthenticated(t *testing.T) {
	session := Session{Authenticated: false}
	decision := DecideAccess([]string{"ADMIN"}, session, "/employee/42")

	if decision.Allowed {
		t.Error("Expected deny for unauthenticated session")
	}
	if decision.RedirectTo != "/login?from=%2Femployee%2F42" {
		t.Errorf("Expected login redirect preserving path, got %q", decision.RedirectTo)
	}
}

func TestDecideAccessMissingRole(t *testing.T) {
	session := Session{Authenticated: true, Roles: []string{"EMPLOYEE"}}
	decision := DecideAccess([]string{"ADMIN"}, session, "/employee")

	if decision.Allowed {
		t.Error("Expected deny for missing role")
	}
	// Authenticated deny goes to the landing page, not login
	if decision.RedirectTo != DefaultLandingPath {
		t.Errorf("Expected landing redirect, got %q", decision.RedirectTo)
	}
}

func TestDecideAccessAnyOfRequired(t *testing.T) {
	session := Session{Authenticated: true, Roles: []string{"RECRUITER", "TEAMLEAD"}}
	decision := DecideAccess([]string{"ADMIN", "TEAMLEAD"}, session, "/requirement")

	if !decision.Allowed {
		t.Error("Expected allow when any required role matches")
	}
	if decision.RedirectTo != "" {
		t.Errorf("Expected no redirect on allow, got %q", decision.RedirectTo)
	}
}

func TestDecideAccessNoRequirement(t *testing.T) {
	session := Session{Authenticated: true, Roles: nil}
	if decision := DecideAccess(nil, session, "/dashboard"); !decision.Allowed {
		t.Error("Expected allow when no roles are required")
	}
}

func TestDecideAccessDeterministic(t *testing.T) {
	session := Session{Authenticated: true, Roles: []string{"EMPLOYEE"}}
	first := DecideAccess([]string{"ADMIN"}, session, "/employee")
	second := DecideAccess([]string{"ADMIN"}, session, "/employee")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical decisions for identical inputs, got %+v vs %+v", first, second)
	}
}
