package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"golang.org/x/oauth2"
)

// Provider yields the shared session manager and authenticated clients
// backed by the session store. Each is constructed lazily, at most once.
type Provider struct {
	serverURL string
	store     sdk.Store
	logger    *slog.Logger

	authOnce sync.Once
	authCli  *sdk.AuthClient

	sessionOnce sync.Once
	session     *sdk.Manager

	httpOnce sync.Once
	httpCli  *http.Client
	httpErr  error

	apiOnce sync.Once
	apiCli  *sdk.Client
	apiErr  error
}

// NewProvider constructs a new Provider bound to the given server URL.
// A nil logger falls back to slog.Default.
func NewProvider(serverURL string, store sdk.Store, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{serverURL: serverURL, store: store, logger: logger}
}

// AuthClient returns the raw auth client, for operations that sit outside
// the session lifecycle (password change against the backend).
func (p *Provider) AuthClient() *sdk.AuthClient {
	p.authOnce.Do(func() {
		p.authCli = sdk.NewAuthClient(p.serverURL, sdk.WithLogger(p.logger))
	})
	return p.authCli
}

// Session returns the session manager, restoring any persisted session on
// first use. The returned manager is always ready.
func (p *Provider) Session(ctx context.Context) *sdk.Manager {
	p.sessionOnce.Do(func() {
		p.session = sdk.NewManager(p.AuthClient(), p.store, sdk.WithManagerLogger(p.logger))
		p.session.Initialize(ctx)
	})
	return p.session
}

// HTTPClient returns an http.Client that attaches the session's bearer
// token to every request. Fails when there is no live session.
func (p *Provider) HTTPClient(ctx context.Context) (*http.Client, error) {
	p.httpOnce.Do(func() {
		session := p.Session(ctx)
		if !session.Snapshot().IsAuthenticated() {
			p.httpErr = errors.New("not logged in; please run `admitioctl auth login`")
			return
		}

		accessToken := session.Token()
		if info, err := sdk.InspectToken(accessToken); err == nil && info.Expired() {
			p.httpErr = errors.New("session token expired; please run `admitioctl auth login`")
			return
		}

		token := &oauth2.Token{
			AccessToken: accessToken,
			TokenType:   "Bearer",
		}
		source := oauth2.StaticTokenSource(token)
		p.httpCli = oauth2.NewClient(context.Background(), source)
	})

	if p.httpErr != nil {
		return nil, p.httpErr
	}

	return p.httpCli, nil
}

// APIClient returns an authenticated API client backed by HTTPClient.
func (p *Provider) APIClient(ctx context.Context) (*sdk.Client, error) {
	p.apiOnce.Do(func() {
		httpClient, err := p.HTTPClient(ctx)
		if err != nil {
			p.apiErr = err
			return
		}

		// A 401 on any domain call means the token died since login; the
		// session must not keep looking authenticated past that point.
		p.apiCli = sdk.NewClient(p.serverURL,
			sdk.WithHTTPClient(httpClient),
			sdk.WithLogger(p.logger),
			sdk.WithInvalidTokenHandler(func(ctx context.Context) {
				p.Session(ctx).InvalidateSession(ctx)
			}),
		)
	})

	if p.apiErr != nil {
		return nil, p.apiErr
	}

	return p.apiCli, nil
}

// PublicClient returns an unauthenticated API client for the endpoints that
// need none (signup, health).
func (p *Provider) PublicClient() *sdk.Client {
	return sdk.NewClient(p.serverURL, sdk.WithLogger(p.logger))
}
