package sdk

import (
	"context"
	"net/http"
)

// Career is a study program leads can be interested in.
type Career struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

// LeadSource is a marketing channel a lead arrived through.
type LeadSource struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

// ListCareers returns the tenant's study programs.
func (c *Client) ListCareers(ctx context.Context) ([]Career, error) {
	var out []Career
	if err := c.rest.do(ctx, http.MethodGet, "/api/carreras", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCareer adds a study program.
func (c *Client) CreateCareer(ctx context.Context, name string) (*Career, error) {
	if name == "" {
		return nil, newError(KindValidation, "career name is required")
	}
	in := struct {
		Name string `json:"nombre"`
	}{name}
	var out Career
	if err := c.rest.do(ctx, http.MethodPost, "/api/carreras", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCareer renames a study program.
func (c *Client) UpdateCareer(ctx context.Context, id, name string) (*Career, error) {
	in := struct {
		Name string `json:"nombre"`
	}{name}
	var out Career
	if err := c.rest.do(ctx, http.MethodPut, "/api/carreras/"+id, "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCareer removes a study program.
func (c *Client) DeleteCareer(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodDelete, "/api/carreras/"+id, "", nil, nil, nil)
}

// ListLeadSources returns the tenant's marketing channels.
func (c *Client) ListLeadSources(ctx context.Context) ([]LeadSource, error) {
	var out []LeadSource
	if err := c.rest.do(ctx, http.MethodGet, "/api/medios", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLeadSource adds a marketing channel.
func (c *Client) CreateLeadSource(ctx context.Context, name string) (*LeadSource, error) {
	if name == "" {
		return nil, newError(KindValidation, "source name is required")
	}
	in := struct {
		Name string `json:"nombre"`
	}{name}
	var out LeadSource
	if err := c.rest.do(ctx, http.MethodPost, "/api/medios", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLeadSource renames a marketing channel.
func (c *Client) UpdateLeadSource(ctx context.Context, id, name string) (*LeadSource, error) {
	in := struct {
		Name string `json:"nombre"`
	}{name}
	var out LeadSource
	if err := c.rest.do(ctx, http.MethodPut, "/api/medios/"+id, "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLeadSource removes a marketing channel.
func (c *Client) DeleteLeadSource(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodDelete, "/api/medios/"+id, "", nil, nil, nil)
}
