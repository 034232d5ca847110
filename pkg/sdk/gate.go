package sdk

// Route classifies which view group a session may reach. The router (or the
// CLI acting as one) consumes this instead of inspecting raw roles.
type Route string

const (
	// RouteLoading means startup re-validation is still in flight; render a
	// placeholder, perform no redirects.
	RouteLoading Route = "loading"
	// RoutePublic means no identity: public views only.
	RoutePublic Route = "public"
	// RoutePasswordChange forces the password-change view regardless of the
	// requested destination.
	RoutePasswordChange Route = "password_change"
	// RouteAdminConsole is the platform super owner console.
	RouteAdminConsole Route = "admin_console"
	// RouteTenantDashboard is the institution dashboard.
	RouteTenantDashboard Route = "tenant_dashboard"
)

// Route derives the reachable view group from the session state.
func (s Session) Route() Route {
	switch {
	case !s.Ready:
		return RouteLoading
	case !s.IsAuthenticated():
		return RoutePublic
	case s.MustChangePassword():
		return RoutePasswordChange
	case s.IsSuperOwner():
		return RouteAdminConsole
	default:
		return RouteTenantDashboard
	}
}

// CanManageUsers reports keymaster-level reach over the tenant user screens.
// Super owners get it here, at the gate, so the role predicates themselves
// stay mutually exclusive.
func (s Session) CanManageUsers() bool {
	return s.IsKeymaster() || s.IsSuperOwner()
}

// CanManageLeads reports access to the lead-management screens: any
// tenant-scoped session, including an impersonated one.
func (s Session) CanManageLeads() bool {
	return s.Identity != nil && s.Identity.Role.TenantScoped()
}
