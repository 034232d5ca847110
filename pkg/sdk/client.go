package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client provides a high-level interface to the Admitio REST API for an
// already-authenticated caller. The http.Client supplied via WithHTTPClient
// is expected to inject the bearer token (see oauth2.NewClient in the CLI's
// client provider); Client itself never touches the credential store.
type Client struct {
	rest *restCore
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient          *http.Client
	Logger              *slog.Logger
	InvalidTokenHandler func(context.Context)
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithLogger overrides the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = logger
	}
}

// WithInvalidTokenHandler registers a callback invoked whenever the backend
// answers 401: the session's token is no longer honored, no matter which
// endpoint noticed first. The CLI's client provider uses this to discard the
// session the moment any domain call is rejected.
func WithInvalidTokenHandler(fn func(context.Context)) ClientOption {
	return func(opts *ClientOptions) {
		opts.InvalidTokenHandler = fn
	}
}

// NewClient creates a new Admitio SDK client that communicates with the API
// server at baseURL. An http.Client is created automatically when one is not
// supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{rest: newRestCore(baseURL, opts)}
}

// Health checks the backend health endpoint. It reports reachability only;
// any 2xx response counts as healthy.
func (c *Client) Health(ctx context.Context) bool {
	err := c.rest.do(ctx, http.MethodGet, "/health", "", nil, nil, nil)
	return err == nil
}

// restCore is the shared JSON-over-HTTP plumbing behind every API client.
type restCore struct {
	baseURL        string
	httpClient     *http.Client
	log            *slog.Logger
	onInvalidToken func(context.Context)
}

func newRestCore(baseURL string, opts ClientOptions) *restCore {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &restCore{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		log:            log,
		onInvalidToken: opts.InvalidTokenHandler,
	}
}

// errorBody is the backend's uniform failure payload.
type errorBody struct {
	Error string `json:"error"`
}

// do executes one JSON request. token, query, in and out are all optional;
// a non-empty token is sent as a bearer Authorization header on top of
// whatever the underlying http.Client already injects.
func (r *restCore) do(ctx context.Context, method, path, token string, query url.Values, in, out any) error {
	endpoint, err := url.JoinPath(r.baseURL, path)
	if err != nil {
		return wrapError(KindValidation, err, "invalid request path %q", path)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return wrapError(KindValidation, err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return wrapError(KindValidation, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return wrapError(KindNetwork, err, "cannot reach server at %s", r.baseURL)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapError(KindNetwork, err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized && r.onInvalidToken != nil {
			r.onInvalidToken(ctx)
		}
		return r.statusError(method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return wrapError(KindServer, err, "decode response from %s %s", method, path)
		}
	}
	return nil
}

// statusError maps an HTTP failure status to the SDK error taxonomy, keeping
// the backend-provided message when one is present.
func (r *restCore) statusError(method, path string, status int, raw []byte) error {
	message := ""
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		message = eb.Error
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	r.log.Debug("api request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)

	kind := KindServer
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuthentication
	case status == http.StatusForbidden:
		kind = KindAuthorization
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = KindValidation
	}
	return &Error{Kind: kind, Message: message}
}
