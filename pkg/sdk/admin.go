package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PlatformStats is the global dashboard served to super owners.
type PlatformStats struct {
	Tenants struct {
		Active   int `json:"activos"`
		Inactive int `json:"inactivos"`
	} `json:"tenants"`
	Users struct {
		Total int `json:"total"`
	} `json:"usuarios"`
	Leads struct {
		Active   int `json:"activos"`
		Today    int `json:"hoy"`
		Enrolled int `json:"matriculados"`
	} `json:"leads"`
	PerPlan map[Plan]int `json:"porPlan"`
}

// TenantDetail is the admin view of an institution.
type TenantDetail struct {
	Tenant
	Active    bool      `json:"activo"`
	UserCount int       `json:"usuarios"`
	LeadCount int       `json:"leads"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantInput is the writable subset of a tenant.
type TenantInput struct {
	Name   string `json:"nombre"`
	Slug   string `json:"slug,omitempty"`
	Plan   Plan   `json:"plan,omitempty"`
	Active *bool  `json:"activo,omitempty"`
}

// ListTenantsOptions filters a tenant listing.
type ListTenantsOptions struct {
	Plan   Plan
	Search string
	Limit  int
}

// AuditEntry is one line of the platform audit log.
type AuditEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"usuario_id"`
	TenantID  string    `json:"tenant_id"`
	Action    string    `json:"accion"`
	Detail    string    `json:"detalle"`
	CreatedAt time.Time `json:"created_at"`
}

// ListAuditOptions filters the audit log.
type ListAuditOptions struct {
	TenantID string
	Action   string
	Limit    int
}

// deleteTenantConfirmation is what the backend demands before destroying an
// institution and all of its data.
const deleteTenantConfirmation = "ELIMINAR"

// PlatformStats returns the global dashboard. Super-owner operation.
func (c *Client) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	var out PlatformStats
	if err := c.rest.do(ctx, http.MethodGet, "/api/admin/dashboard", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTenants returns all institutions on the platform.
func (c *Client) ListTenants(ctx context.Context, opts ListTenantsOptions) ([]TenantDetail, error) {
	query := url.Values{}
	if opts.Plan != "" {
		query.Set("plan", string(opts.Plan))
	}
	if opts.Search != "" {
		query.Set("q", opts.Search)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out []TenantDetail
	if err := c.rest.do(ctx, http.MethodGet, "/api/admin/tenants", "", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTenant fetches one institution by ID.
func (c *Client) GetTenant(ctx context.Context, id string) (*TenantDetail, error) {
	var out TenantDetail
	if err := c.rest.do(ctx, http.MethodGet, "/api/admin/tenants/"+id, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTenant provisions a new institution.
func (c *Client) CreateTenant(ctx context.Context, in TenantInput) (*TenantDetail, error) {
	if in.Name == "" {
		return nil, newError(KindValidation, "tenant name is required")
	}
	var out TenantDetail
	if err := c.rest.do(ctx, http.MethodPost, "/api/admin/tenants", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTenant updates an institution's metadata or plan.
func (c *Client) UpdateTenant(ctx context.Context, id string, in TenantInput) (*TenantDetail, error) {
	var out TenantDetail
	if err := c.rest.do(ctx, http.MethodPut, "/api/admin/tenants/"+id, "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTenant destroys an institution and everything in it. The explicit
// confirmation string rides in the request body.
func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	in := struct {
		Confirm string `json:"confirmar"`
	}{deleteTenantConfirmation}
	return c.rest.do(ctx, http.MethodDelete, "/api/admin/tenants/"+id, "", nil, in, nil)
}

// ListSuperOwners returns the platform's super owner accounts.
func (c *Client) ListSuperOwners(ctx context.Context) ([]Identity, error) {
	var out []Identity
	if err := c.rest.do(ctx, http.MethodGet, "/api/admin/super-owners", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSuperOwner adds a platform super owner. Supremo-only on the backend.
func (c *Client) CreateSuperOwner(ctx context.Context, in UserInput) (*Identity, error) {
	if in.Email == "" {
		return nil, newError(KindValidation, "email is required")
	}
	var out Identity
	if err := c.rest.do(ctx, http.MethodPost, "/api/admin/super-owners", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSuperOwner removes a platform super owner.
func (c *Client) DeleteSuperOwner(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodDelete, "/api/admin/super-owners/"+id, "", nil, nil, nil)
}

// ListAudit returns platform audit entries, newest first.
func (c *Client) ListAudit(ctx context.Context, opts ListAuditOptions) ([]AuditEntry, error) {
	query := url.Values{}
	if opts.TenantID != "" {
		query.Set("tenant_id", opts.TenantID)
	}
	if opts.Action != "" {
		query.Set("accion", opts.Action)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out []AuditEntry
	if err := c.rest.do(ctx, http.MethodGet, "/api/admin/auditoria", "", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
