package sdk

// Identity is the authenticated actor as reported by the Admitio backend.
// Field names follow the backend wire format; the struct is replaced wholesale
// whenever the backend re-validates the session, and mutated locally only to
// clear MustChangePassword after a confirmed password change.
type Identity struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"nombre"`
	Email              string `json:"email"`
	Role               Role   `json:"rol"`
	MustChangePassword bool   `json:"debeCambiarPassword"`
}

// Tenant is the institution context for a tenant-scoped identity. It is nil
// for platform identities (super owners) except while impersonating, when it
// carries the impersonated user's institution.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
	Slug string `json:"slug"`
	Plan Plan   `json:"plan"`
}

// Plan is a subscription tier.
type Plan string

const (
	PlanFree        Plan = "free"
	PlanPro         Plan = "pro"
	PlanInstitucion Plan = "institucion"
)
