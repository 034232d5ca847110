package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// LeadStatus is the pipeline stage of a lead.
type LeadStatus string

const (
	LeadNuevo         LeadStatus = "nuevo"
	LeadContactado    LeadStatus = "contactado"
	LeadEnSeguimiento LeadStatus = "en_seguimiento"
	LeadExamen        LeadStatus = "examen"
	LeadMatriculado   LeadStatus = "matriculado"
	LeadDescartado    LeadStatus = "descartado"
)

// Lead is a prospective student tracked by a tenant.
type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"nombre"`
	Email         string     `json:"email"`
	Phone         string     `json:"telefono"`
	GuardianPhone string     `json:"telefono_apoderado"`
	CareerID      string     `json:"carrera_id"`
	SourceID      string     `json:"medio_id"`
	Status        LeadStatus `json:"estado"`
	Archived      bool       `json:"archivado"`
	CreatedAt     time.Time  `json:"created_at"`
}

// LeadInput is the writable subset of a lead.
type LeadInput struct {
	Name          string     `json:"nombre"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"telefono,omitempty"`
	GuardianPhone string     `json:"telefono_apoderado,omitempty"`
	CareerID      string     `json:"carrera_id,omitempty"`
	SourceID      string     `json:"medio_id,omitempty"`
	Status        LeadStatus `json:"estado,omitempty"`
}

// ListLeadsOptions filters a lead listing.
type ListLeadsOptions struct {
	Status   LeadStatus
	Archived *bool
	Limit    int
}

// LeadLimit describes how close the tenant is to its plan's lead quota.
type LeadLimit struct {
	Available int  `json:"disponible"`
	Limit     int  `json:"limite"`
	Alert     bool `json:"alerta"`
}

// LeadStats is the aggregate view shown on the tenant dashboard.
type LeadStats struct {
	Total     int                `json:"total"`
	Today     int                `json:"hoy"`
	ThisWeek  int                `json:"estaSemana"`
	PerStatus map[LeadStatus]int `json:"porEstado"`
	Limit     *LeadLimit         `json:"limite"`
}

// ListLeads returns the tenant's leads, newest first.
func (c *Client) ListLeads(ctx context.Context, opts ListLeadsOptions) ([]Lead, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("estado", string(opts.Status))
	}
	if opts.Archived != nil {
		query.Set("archivado", strconv.FormatBool(*opts.Archived))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out []Lead
	if err := c.rest.do(ctx, http.MethodGet, "/api/leads", "", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeadStats returns aggregate lead counts for the tenant.
func (c *Client) LeadStats(ctx context.Context) (*LeadStats, error) {
	var out LeadStats
	if err := c.rest.do(ctx, http.MethodGet, "/api/leads/stats", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLead fetches one lead by ID.
func (c *Client) GetLead(ctx context.Context, id string) (*Lead, error) {
	var out Lead
	if err := c.rest.do(ctx, http.MethodGet, "/api/leads/"+id, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLead registers a new lead.
func (c *Client) CreateLead(ctx context.Context, in LeadInput) (*Lead, error) {
	if in.Name == "" {
		return nil, newError(KindValidation, "lead name is required")
	}
	var out Lead
	if err := c.rest.do(ctx, http.MethodPost, "/api/leads", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLead updates an existing lead.
func (c *Client) UpdateLead(ctx context.Context, id string, in LeadInput) (*Lead, error) {
	var out Lead
	if err := c.rest.do(ctx, http.MethodPut, "/api/leads/"+id, "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArchiveLead moves a lead out of the active pipeline.
func (c *Client) ArchiveLead(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodPost, "/api/leads/"+id+"/archivar", "", nil, nil, nil)
}

// UnarchiveLead restores an archived lead. Super-owner operation; tenantID
// names the owning institution.
func (c *Client) UnarchiveLead(ctx context.Context, id, tenantID string) error {
	in := struct {
		TenantID string `json:"tenantId"`
	}{tenantID}
	return c.rest.do(ctx, http.MethodPost, "/api/leads/"+id+"/desarchivar", "", nil, in, nil)
}

// LogLeadContact records a contact attempt (call, email, visit) on a lead.
func (c *Client) LogLeadContact(ctx context.Context, id, kind, description string) error {
	if kind == "" {
		return newError(KindValidation, "contact type is required")
	}
	in := struct {
		Kind        string `json:"tipo"`
		Description string `json:"descripcion"`
	}{kind, description}
	return c.rest.do(ctx, http.MethodPost, "/api/leads/"+id+"/contacto", "", nil, in, nil)
}
