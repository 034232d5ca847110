package sdk

import (
	"context"
	"net/http"
)

// LoginResult is the backend's answer to a session-establishing operation.
// Tenant is nil for platform logins.
type LoginResult struct {
	Token  string   `json:"token"`
	User   Identity `json:"user"`
	Tenant *Tenant  `json:"tenant"`
}

// WhoAmIResult is the backend's answer to a token re-validation.
type WhoAmIResult struct {
	User   Identity `json:"user"`
	Tenant *Tenant  `json:"tenant"`
}

// AuthAPI is the auth backend contract the session Manager consumes. The
// Manager owns the current token and passes it explicitly; AuthAPI
// implementations hold no session state of their own.
type AuthAPI interface {
	Login(ctx context.Context, tenantSlug, email, password string) (*LoginResult, error)
	AdminLogin(ctx context.Context, email, password string) (*LoginResult, error)
	WhoAmI(ctx context.Context, token string) (*WhoAmIResult, error)
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error
	Impersonate(ctx context.Context, token, targetUserID string) (*LoginResult, error)
	ExitImpersonation(ctx context.Context, token string) error
}

// AuthClient implements AuthAPI over the backend's JSON REST endpoints.
type AuthClient struct {
	rest *restCore
}

var _ AuthAPI = (*AuthClient)(nil)

// NewAuthClient creates an auth backend client for the API server at baseURL.
func NewAuthClient(baseURL string, optFns ...ClientOption) *AuthClient {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &AuthClient{rest: newRestCore(baseURL, opts)}
}

// Login authenticates a tenant-scoped user.
func (c *AuthClient) Login(ctx context.Context, tenantSlug, email, password string) (*LoginResult, error) {
	in := struct {
		Tenant   string `json:"tenant"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{tenantSlug, email, password}

	var out LoginResult
	if err := c.rest.do(ctx, http.MethodPost, "/api/auth/login", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminLogin authenticates a platform super owner. The response never carries
// a tenant.
func (c *AuthClient) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out LoginResult
	if err := c.rest.do(ctx, http.MethodPost, "/api/auth/admin/login", "", nil, in, &out); err != nil {
		return nil, err
	}
	out.Tenant = nil
	return &out, nil
}

// WhoAmI re-validates a stored token and returns the authoritative identity.
func (c *AuthClient) WhoAmI(ctx context.Context, token string) (*WhoAmIResult, error) {
	var out WhoAmIResult
	if err := c.rest.do(ctx, http.MethodGet, "/api/auth/me", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword submits a password change for the current user.
func (c *AuthClient) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	in := struct {
		Current string `json:"passwordActual"`
		New     string `json:"passwordNueva"`
	}{currentPassword, newPassword}

	return c.rest.do(ctx, http.MethodPost, "/api/auth/cambiar-password", token, nil, in, nil)
}

// Impersonate obtains an impersonation grant for the target user. The caller
// must hold a platform role; the backend is the authority on that.
func (c *AuthClient) Impersonate(ctx context.Context, token, targetUserID string) (*LoginResult, error) {
	var out LoginResult
	if err := c.rest.do(ctx, http.MethodPost, "/api/auth/impersonar/"+targetUserID, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExitImpersonation revokes an impersonation grant. Callers treat failures as
// best-effort; the local session restore proceeds regardless.
func (c *AuthClient) ExitImpersonation(ctx context.Context, token string) error {
	return c.rest.do(ctx, http.MethodPost, "/api/auth/salir-impersonacion", token, nil, nil, nil)
}
