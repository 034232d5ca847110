package sdk

import (
	"context"
	"net/http"
	"net/url"
)

// RegisterInput is the signup wizard payload: a new institution plus its
// first keymaster account.
type RegisterInput struct {
	InstitutionName string `json:"nombreInstitucion"`
	Slug            string `json:"slug"`
	KeymasterName   string `json:"nombreKeymaster"`
	KeymasterEmail  string `json:"emailKeymaster"`
	Password        string `json:"password"`
}

// SlugAvailability answers a slug pre-check during signup.
type SlugAvailability struct {
	Available bool   `json:"disponible"`
	Slug      string `json:"slug"`
}

// CheckSlug reports whether a URL slug is still free. Public endpoint.
func (c *Client) CheckSlug(ctx context.Context, slug string) (*SlugAvailability, error) {
	if slug == "" {
		return nil, newError(KindValidation, "slug is required")
	}
	query := url.Values{"slug": {slug}}
	var out SlugAvailability
	if err := c.rest.do(ctx, http.MethodGet, "/api/signup/check-slug", "", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new institution pending email verification.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	switch {
	case in.InstitutionName == "":
		return newError(KindValidation, "institution name is required")
	case in.Slug == "":
		return newError(KindValidation, "slug is required")
	case in.KeymasterEmail == "":
		return newError(KindValidation, "keymaster email is required")
	case in.Password == "":
		return newError(KindValidation, "password is required")
	}
	return c.rest.do(ctx, http.MethodPost, "/api/signup", "", nil, in, nil)
}

// VerifyAccount activates a pending signup using the emailed token.
func (c *Client) VerifyAccount(ctx context.Context, token string) error {
	if token == "" {
		return newError(KindValidation, "verification token is required")
	}
	return c.rest.do(ctx, http.MethodGet, "/api/signup/verificar/"+token, "", nil, nil, nil)
}

// ResendVerification re-sends the verification email for a pending signup.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	if email == "" {
		return newError(KindValidation, "email is required")
	}
	in := struct {
		Email string `json:"email"`
	}{email}
	return c.rest.do(ctx, http.MethodPost, "/api/signup/reenviar-verificacion", "", nil, in, nil)
}
