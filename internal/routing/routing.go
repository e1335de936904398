// Package routing holds the role-based navigation policy: where a user lands
// after login and which areas of the app a role may open.
package routing

import (
	"strings"

	"threadline/web/internal/model"
)

const (
	PathLogin             = "/login"
	PathOnboarding        = "/onboarding"
	PathDashboard         = "/dashboard"
	PathSupplierDashboard = "/supplier-dashboard"
	PathAdminDashboard    = "/admin-dashboard"
)

type rule struct {
	roles []model.Role
	// onboarded restricts the rule to designers in the given onboarding state.
	onboarded *bool
	path      string
}

var (
	notOnboarded = false

	// redirects is evaluated top to bottom; the first matching rule wins.
	redirects = []rule{
		{roles: []model.Role{model.RoleAdmin, model.RoleSuperAdmin}, path: PathAdminDashboard},
		{roles: []model.Role{model.RoleSupplier}, path: PathSupplierDashboard},
		{roles: []model.Role{model.RoleDesigner}, onboarded: &notOnboarded, path: PathOnboarding},
		{roles: []model.Role{model.RoleDesigner}, path: PathDashboard},
	}

	// areas maps path prefixes to the roles allowed to open them.
	areas = []struct {
		prefix string
		roles  []model.Role
	}{
		{prefix: "/admin", roles: []model.Role{model.RoleAdmin, model.RoleSuperAdmin}},
		{prefix: PathAdminDashboard, roles: []model.Role{model.RoleAdmin, model.RoleSuperAdmin}},
		{prefix: PathSupplierDashboard, roles: []model.Role{model.RoleSupplier}},
		{prefix: "/supplier/", roles: []model.Role{model.RoleSupplier}},
		{prefix: PathOnboarding, roles: []model.Role{model.RoleDesigner}},
	}
)

// RedirectFor returns the landing path for user. A nil user goes to login;
// an unrecognised role lands on the generic dashboard.
func RedirectFor(user *model.User) string {
	if user == nil {
		return PathLogin
	}
	for _, r := range redirects {
		if !hasRole(r.roles, user.Role) {
			continue
		}
		if r.onboarded != nil && user.OnboardingComplete() != *r.onboarded {
			continue
		}
		return r.path
	}
	return PathDashboard
}

// CanAccess reports whether role may open path. Paths outside the restricted
// areas are open to every authenticated role.
func CanAccess(role model.Role, path string) bool {
	for _, a := range areas {
		if path == a.prefix || strings.HasPrefix(path, strings.TrimSuffix(a.prefix, "/")+"/") {
			return hasRole(a.roles, role)
		}
	}
	return true
}

func hasRole(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
