package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sessionFor(role Role, mustChange bool) Session {
	return Session{
		Ready:    true,
		Identity: &Identity{ID: "u1", Role: role, MustChangePassword: mustChange},
	}
}

func TestSession_Route(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want Route
	}{
		{"not ready renders loading", Session{}, RouteLoading},
		{"not ready even with cached identity", Session{Identity: &Identity{ID: "u1"}}, RouteLoading},
		{"ready unauthenticated is public", Session{Ready: true}, RoutePublic},
		{"asistente routes to tenant dashboard", sessionFor(RoleAsistente, false), RouteTenantDashboard},
		{"encargado routes to tenant dashboard", sessionFor(RoleEncargado, false), RouteTenantDashboard},
		{"keymaster routes to tenant dashboard", sessionFor(RoleKeymaster, false), RouteTenantDashboard},
		{"super owner routes to admin console", sessionFor(RoleSuperOwner, false), RouteAdminConsole},
		{"supremo routes to admin console", sessionFor(RoleSuperOwnerSupremo, false), RouteAdminConsole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sess.Route())
		})
	}
}

func TestSession_Route_ForcesPasswordChangeForEveryRole(t *testing.T) {
	roles := []Role{RoleAsistente, RoleEncargado, RoleKeymaster, RoleSuperOwner, RoleSuperOwnerSupremo}
	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			assert.Equal(t, RoutePasswordChange, sessionFor(role, true).Route())
			assert.NotEqual(t, RoutePasswordChange, sessionFor(role, false).Route())
		})
	}
}

func TestSession_RolePredicatesAreMutuallyExclusive(t *testing.T) {
	type predicates struct {
		superOwner, supremo, keymaster, encargado, asistente bool
	}
	tests := []struct {
		role Role
		want predicates
	}{
		{RoleAsistente, predicates{asistente: true}},
		{RoleEncargado, predicates{encargado: true}},
		{RoleKeymaster, predicates{keymaster: true}},
		{RoleSuperOwner, predicates{superOwner: true}},
		{RoleSuperOwnerSupremo, predicates{superOwner: true, supremo: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			s := sessionFor(tt.role, false)
			assert.True(t, s.IsAuthenticated())
			assert.Equal(t, tt.want.superOwner, s.IsSuperOwner())
			assert.Equal(t, tt.want.supremo, s.IsSupremo())
			assert.Equal(t, tt.want.keymaster, s.IsKeymaster(), "platform roles must not count as keymaster")
			assert.Equal(t, tt.want.encargado, s.IsEncargado())
			assert.Equal(t, tt.want.asistente, s.IsAsistente())
		})
	}
}

func TestSession_CanManageUsers(t *testing.T) {
	assert.True(t, sessionFor(RoleKeymaster, false).CanManageUsers())
	assert.True(t, sessionFor(RoleSuperOwner, false).CanManageUsers(), "super owner reach is granted at the gate")
	assert.False(t, sessionFor(RoleEncargado, false).CanManageUsers())
	assert.False(t, sessionFor(RoleAsistente, false).CanManageUsers())
	assert.False(t, Session{Ready: true}.CanManageUsers())
}

func TestRole_Scopes(t *testing.T) {
	for _, r := range []Role{RoleAsistente, RoleEncargado, RoleKeymaster} {
		assert.True(t, r.TenantScoped(), "%s", r)
		assert.False(t, r.Platform(), "%s", r)
	}
	for _, r := range []Role{RoleSuperOwner, RoleSuperOwnerSupremo} {
		assert.True(t, r.Platform(), "%s", r)
		assert.False(t, r.TenantScoped(), "%s", r)
	}
	assert.False(t, Role("director").Valid())
}
