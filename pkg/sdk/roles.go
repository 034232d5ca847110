package sdk

// Role is the closed set of roles the backend issues. Tenant-scoped roles
// always come with a Tenant; platform roles never do.
type Role string

const (
	RoleAsistente         Role = "asistente"
	RoleEncargado         Role = "encargado"
	RoleKeymaster         Role = "keymaster"
	RoleSuperOwner        Role = "super_owner"
	RoleSuperOwnerSupremo Role = "super_owner_supremo"
)

// TenantScoped reports whether the role belongs to an institution user.
func (r Role) TenantScoped() bool {
	switch r {
	case RoleAsistente, RoleEncargado, RoleKeymaster:
		return true
	}
	return false
}

// Platform reports whether the role is a platform (super owner) role.
func (r Role) Platform() bool {
	return r == RoleSuperOwner || r == RoleSuperOwnerSupremo
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r.TenantScoped() || r.Platform()
}
