package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/client"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsoleContext(t *testing.T, identity sdk.Identity, tenant *sdk.Tenant) context.Context {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(sdk.WhoAmIResult{User: identity, Tenant: tenant})
	}))
	t.Cleanup(server.Close)

	ctx := context.Background()
	store := sdk.NewMemStore()
	require.NoError(t, store.Set(ctx, sdk.KeyToken, "jwt-test"))
	raw, err := json.Marshal(identity)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, sdk.KeyUser, string(raw)))

	cfg := &config.GlobalConfig{
		ServerURL:      server.URL,
		ClientProvider: client.NewProvider(server.URL, store, nil),
	}
	return config.InjectConfig(ctx, cfg)
}

func TestRequireConsole(t *testing.T) {
	t.Run("tenant session is rejected", func(t *testing.T) {
		ctx := newConsoleContext(t,
			sdk.Identity{ID: "u1", Role: sdk.RoleKeymaster},
			&sdk.Tenant{ID: "t1", Slug: "andes"},
		)

		_, err := requireConsole(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "super owner")
	})

	t.Run("super owner session passes", func(t *testing.T) {
		ctx := newConsoleContext(t, sdk.Identity{ID: "p1", Role: sdk.RoleSuperOwner}, nil)

		cfg, err := requireConsole(ctx)
		require.NoError(t, err)
		assert.NotNil(t, cfg)
	})
}

func TestRequireSupremo(t *testing.T) {
	t.Run("ordinary super owner cannot manage owners", func(t *testing.T) {
		ctx := newConsoleContext(t, sdk.Identity{ID: "p1", Role: sdk.RoleSuperOwner}, nil)

		_, err := requireSupremo(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "supreme")
	})

	t.Run("supreme super owner passes", func(t *testing.T) {
		ctx := newConsoleContext(t, sdk.Identity{ID: "p0", Role: sdk.RoleSuperOwnerSupremo}, nil)

		admitioClient, err := requireSupremo(ctx)
		require.NoError(t, err)
		assert.NotNil(t, admitioClient)
	})
}
