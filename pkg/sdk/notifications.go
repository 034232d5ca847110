package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Notification is an in-app message for the current user.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"mensaje"`
	Read      bool      `json:"leida"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotifications returns the user's notifications. A non-nil read filters
// by read state.
func (c *Client) ListNotifications(ctx context.Context, read *bool) ([]Notification, error) {
	query := url.Values{}
	if read != nil {
		query.Set("leidas", strconv.FormatBool(*read))
	}
	var out []Notification
	if err := c.rest.do(ctx, http.MethodGet, "/api/notificaciones", "", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodPut, "/api/notificaciones/"+id+"/leer", "", nil, nil, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.rest.do(ctx, http.MethodPut, "/api/notificaciones/leer-todas", "", nil, nil, nil)
}
