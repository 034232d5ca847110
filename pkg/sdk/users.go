package sdk

import (
	"context"
	"net/http"
)

// UserInput is the writable subset of a tenant user.
type UserInput struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  Role   `json:"rol"`
}

// UserLimit describes the tenant's user quota under its plan.
type UserLimit struct {
	Current int  `json:"actual"`
	Limit   int  `json:"limite"`
	Plan    Plan `json:"plan"`
}

// ResetPasswordResult carries the temporary password issued to a user. The
// target user's next login comes back with MustChangePassword set.
type ResetPasswordResult struct {
	TemporaryPassword string `json:"passwordTemporal"`
}

// ListUsers returns the tenant's users. Keymaster operation.
func (c *Client) ListUsers(ctx context.Context) ([]Identity, error) {
	var out []Identity
	if err := c.rest.do(ctx, http.MethodGet, "/api/usuarios", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserLimit returns how many users the tenant's plan still allows.
func (c *Client) UserLimit(ctx context.Context) (*UserLimit, error) {
	var out UserLimit
	if err := c.rest.do(ctx, http.MethodGet, "/api/usuarios/limite", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches one tenant user by ID.
func (c *Client) GetUser(ctx context.Context, id string) (*Identity, error) {
	var out Identity
	if err := c.rest.do(ctx, http.MethodGet, "/api/usuarios/"+id, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser adds a user to the tenant. The backend issues a temporary
// password and flags the account for a mandatory change.
func (c *Client) CreateUser(ctx context.Context, in UserInput) (*Identity, error) {
	if in.Email == "" {
		return nil, newError(KindValidation, "user email is required")
	}
	if !in.Role.TenantScoped() {
		return nil, newError(KindValidation, "role %q is not a tenant role", in.Role)
	}
	var out Identity
	if err := c.rest.do(ctx, http.MethodPost, "/api/usuarios", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates a tenant user.
func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) (*Identity, error) {
	var out Identity
	if err := c.rest.do(ctx, http.MethodPut, "/api/usuarios/"+id, "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a tenant user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodDelete, "/api/usuarios/"+id, "", nil, nil, nil)
}

// ResetUserPassword issues a temporary password for a tenant user.
func (c *Client) ResetUserPassword(ctx context.Context, id string) (*ResetPasswordResult, error) {
	var out ResetPasswordResult
	if err := c.rest.do(ctx, http.MethodPost, "/api/usuarios/"+id+"/reset-password", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
