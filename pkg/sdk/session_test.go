package sdk

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthAPI implements AuthAPI with overridable behavior per test.
type fakeAuthAPI struct {
	loginFunc             func(ctx context.Context, tenantSlug, email, password string) (*LoginResult, error)
	adminLoginFunc        func(ctx context.Context, email, password string) (*LoginResult, error)
	whoAmIFunc            func(ctx context.Context, token string) (*WhoAmIResult, error)
	changePasswordFunc    func(ctx context.Context, token, current, new string) error
	impersonateFunc       func(ctx context.Context, token, targetUserID string) (*LoginResult, error)
	exitImpersonationFunc func(ctx context.Context, token string) error

	loginCalls  int
	whoAmICalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, tenantSlug, email, password string) (*LoginResult, error) {
	f.loginCalls++
	if f.loginFunc != nil {
		return f.loginFunc(ctx, tenantSlug, email, password)
	}
	return nil, newError(KindServer, "login not stubbed")
}

func (f *fakeAuthAPI) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	if f.adminLoginFunc != nil {
		return f.adminLoginFunc(ctx, email, password)
	}
	return nil, newError(KindServer, "adminLogin not stubbed")
}

func (f *fakeAuthAPI) WhoAmI(ctx context.Context, token string) (*WhoAmIResult, error) {
	f.whoAmICalls++
	if f.whoAmIFunc != nil {
		return f.whoAmIFunc(ctx, token)
	}
	return nil, newError(KindServer, "whoAmI not stubbed")
}

func (f *fakeAuthAPI) ChangePassword(ctx context.Context, token, current, new string) error {
	if f.changePasswordFunc != nil {
		return f.changePasswordFunc(ctx, token, current, new)
	}
	return newError(KindServer, "changePassword not stubbed")
}

func (f *fakeAuthAPI) Impersonate(ctx context.Context, token, targetUserID string) (*LoginResult, error) {
	if f.impersonateFunc != nil {
		return f.impersonateFunc(ctx, token, targetUserID)
	}
	return nil, newError(KindServer, "impersonate not stubbed")
}

func (f *fakeAuthAPI) ExitImpersonation(ctx context.Context, token string) error {
	if f.exitImpersonationFunc != nil {
		return f.exitImpersonationFunc(ctx, token)
	}
	return nil
}

var (
	tenantUser = Identity{ID: "u1", DisplayName: "Maria Perez", Email: "maria@andes.edu", Role: RoleKeymaster}
	andes      = Tenant{ID: "t1", Name: "Instituto Andes", Slug: "andes", Plan: PlanPro}
	platform   = Identity{ID: "so1", DisplayName: "Root Owner", Email: "root@admitio.com", Role: RoleSuperOwner}
)

func tenantLoginStub(token string) func(context.Context, string, string, string) (*LoginResult, error) {
	return func(_ context.Context, slug, _, _ string) (*LoginResult, error) {
		if slug != andes.Slug {
			return nil, newError(KindServer, "institución no encontrada")
		}
		u := tenantUser
		t := andes
		return &LoginResult{Token: token, User: u, Tenant: &t}, nil
	}
}

func TestManager_Login(t *testing.T) {
	t.Run("establishes tenant session and persists it", func(t *testing.T) {
		api := &fakeAuthAPI{loginFunc: tenantLoginStub("tok-1")}
		store := NewMemStore()
		m := NewManager(api, store)

		err := m.Login(context.Background(), "andes", "maria@andes.edu", "secret")
		require.NoError(t, err)

		s := m.Snapshot()
		require.NotNil(t, s.Identity)
		assert.True(t, s.Identity.Role.TenantScoped())
		require.NotNil(t, s.Tenant)
		assert.Equal(t, "andes", s.Tenant.Slug)

		for _, key := range []string{KeyToken, KeyUser, KeyTenant} {
			_, ok, _ := store.Get(context.Background(), key)
			assert.True(t, ok, "key %s should be persisted", key)
		}
	})

	t.Run("empty tenant slug rejects before any network call", func(t *testing.T) {
		api := &fakeAuthAPI{loginFunc: tenantLoginStub("tok-1")}
		store := NewMemStore()
		m := NewManager(api, store)

		err := m.Login(context.Background(), "", "a@b.com", "x")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Zero(t, api.loginCalls, "no network call expected")
		assert.Zero(t, store.Len(), "no storage mutation expected")
	})

	t.Run("backend failure sets lastError and propagates", func(t *testing.T) {
		api := &fakeAuthAPI{loginFunc: func(context.Context, string, string, string) (*LoginResult, error) {
			return nil, newError(KindAuthentication, "credenciales inválidas")
		}}
		m := NewManager(api, NewMemStore())

		err := m.Login(context.Background(), "andes", "maria@andes.edu", "wrong")
		require.Error(t, err)
		assert.True(t, IsAuthentication(err))
		assert.Equal(t, "credenciales inválidas", m.Snapshot().LastError)
	})

	t.Run("lastError clears at the start of the next operation", func(t *testing.T) {
		calls := 0
		api := &fakeAuthAPI{loginFunc: func(ctx context.Context, slug, email, pw string) (*LoginResult, error) {
			calls++
			if calls == 1 {
				return nil, newError(KindAuthentication, "credenciales inválidas")
			}
			return tenantLoginStub("tok-2")(ctx, slug, email, pw)
		}}
		m := NewManager(api, NewMemStore())

		_ = m.Login(context.Background(), "andes", "maria@andes.edu", "wrong")
		require.NoError(t, m.Login(context.Background(), "andes", "maria@andes.edu", "right"))
		assert.Empty(t, m.Snapshot().LastError)
	})
}

func TestManager_AdminLogin_ClearsStaleTenant(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	// Leave a stale tenant behind, as an earlier tenant session would.
	rawTenant, _ := json.Marshal(andes)
	require.NoError(t, store.Set(ctx, KeyTenant, string(rawTenant)))

	api := &fakeAuthAPI{adminLoginFunc: func(context.Context, string, string) (*LoginResult, error) {
		u := platform
		return &LoginResult{Token: "admin-tok", User: u}, nil
	}}
	m := NewManager(api, store)

	require.NoError(t, m.AdminLogin(ctx, "root@admitio.com", "secret"))

	s := m.Snapshot()
	assert.Nil(t, s.Tenant, "platform identities are never tenant-scoped")
	assert.True(t, s.IsSuperOwner())

	_, ok, _ := store.Get(ctx, KeyTenant)
	assert.False(t, ok, "stale tenant key must be removed")
}

func TestManager_Logout_Idempotent(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{loginFunc: tenantLoginStub("tok-1")}
	store := NewMemStore()
	m := NewManager(api, store)
	require.NoError(t, m.Login(ctx, "andes", "maria@andes.edu", "secret"))

	m.Logout(ctx)
	first := m.Snapshot()
	m.Logout(ctx)
	second := m.Snapshot()

	assert.Equal(t, first, second)
	assert.Nil(t, second.Identity)
	assert.Nil(t, second.Tenant)
	assert.False(t, second.Impersonating)
	assert.Zero(t, store.Len())
}

func TestManager_IdentityNilImpliesTenantNil(t *testing.T) {
	// Walk the session through every transition and check the invariant at
	// each committed state.
	ctx := context.Background()
	api := &fakeAuthAPI{
		loginFunc: tenantLoginStub("tok-1"),
		adminLoginFunc: func(context.Context, string, string) (*LoginResult, error) {
			u := platform
			return &LoginResult{Token: "admin-tok", User: u}, nil
		},
		whoAmIFunc: func(_ context.Context, token string) (*WhoAmIResult, error) {
			u := platform
			return &WhoAmIResult{User: u}, nil
		},
		impersonateFunc: func(context.Context, string, string) (*LoginResult, error) {
			u, tn := tenantUser, andes
			return &LoginResult{Token: "imp-tok", User: u, Tenant: &tn}, nil
		},
	}
	store := NewMemStore()
	m := NewManager(api, store)

	check := func(label string) {
		s := m.Snapshot()
		if s.Identity == nil {
			assert.Nil(t, s.Tenant, "identity == nil must imply tenant == nil after %s", label)
		}
	}

	check("construction")
	_ = m.Login(ctx, "andes", "maria@andes.edu", "secret")
	check("login")
	m.Logout(ctx)
	check("logout")
	_ = m.AdminLogin(ctx, "root@admitio.com", "secret")
	check("adminLogin")
	_ = m.Impersonate(ctx, "u1")
	check("impersonate")
	_ = m.ExitImpersonation(ctx)
	check("exitImpersonation")
	m.Logout(ctx)
	check("final logout")
}

func TestManager_Initialize(t *testing.T) {
	t.Run("reload round-trip restores an equivalent session", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemStore()
		api := &fakeAuthAPI{
			loginFunc: tenantLoginStub("tok-1"),
			whoAmIFunc: func(_ context.Context, token string) (*WhoAmIResult, error) {
				if token != "tok-1" {
					return nil, newError(KindAuthentication, "sesión expirada")
				}
				u, tn := tenantUser, andes
				return &WhoAmIResult{User: u, Tenant: &tn}, nil
			},
		}

		first := NewManager(api, store)
		require.NoError(t, first.Login(ctx, "andes", "maria@andes.edu", "secret"))
		before := first.Snapshot()

		// Simulated reload: a fresh Manager over the same store.
		second := NewManager(api, store)
		second.Initialize(ctx)

		after := second.Snapshot()
		assert.True(t, after.Ready)
		require.NotNil(t, after.Identity)
		assert.Equal(t, before.Identity.ID, after.Identity.ID)
		assert.Equal(t, before.Identity.Role, after.Identity.Role)
		require.NotNil(t, after.Tenant)
		assert.Equal(t, before.Tenant.Slug, after.Tenant.Slug)
	})

	t.Run("no stored token ends ready and empty", func(t *testing.T) {
		m := NewManager(&fakeAuthAPI{}, NewMemStore())
		m.Initialize(context.Background())

		s := m.Snapshot()
		assert.True(t, s.Ready)
		assert.Nil(t, s.Identity)
		assert.Equal(t, RoutePublic, s.Route())
	})

	t.Run("rejected token ends ready, logged out, storage empty", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemStore()
		require.NoError(t, store.Set(ctx, KeyToken, "stale"))
		rawUser, _ := json.Marshal(tenantUser)
		require.NoError(t, store.Set(ctx, KeyUser, string(rawUser)))

		api := &fakeAuthAPI{whoAmIFunc: func(context.Context, string) (*WhoAmIResult, error) {
			return nil, newError(KindAuthentication, "sesión expirada")
		}}
		m := NewManager(api, store)
		m.Initialize(ctx)

		s := m.Snapshot()
		assert.True(t, s.Ready, "gating must never be blocked")
		assert.Nil(t, s.Identity)
		assert.Zero(t, store.Len(), "no stored keys may remain")
	})

	t.Run("re-entrant initialize is a no-op", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemStore()
		require.NoError(t, store.Set(ctx, KeyToken, "tok-1"))

		api := &fakeAuthAPI{whoAmIFunc: func(context.Context, string) (*WhoAmIResult, error) {
			u, tn := tenantUser, andes
			return &WhoAmIResult{User: u, Tenant: &tn}, nil
		}}
		m := NewManager(api, store)
		m.Initialize(ctx)
		m.Initialize(ctx)

		assert.Equal(t, 1, api.whoAmICalls)
	})

	t.Run("restores impersonation marker across reload", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemStore()
		require.NoError(t, store.Set(ctx, KeyToken, "imp-tok"))
		rawOriginal, _ := json.Marshal(platform)
		require.NoError(t, store.Set(ctx, KeyOriginalToken, "admin-tok"))
		require.NoError(t, store.Set(ctx, KeyOriginalUser, string(rawOriginal)))

		api := &fakeAuthAPI{whoAmIFunc: func(context.Context, string) (*WhoAmIResult, error) {
			u, tn := tenantUser, andes
			return &WhoAmIResult{User: u, Tenant: &tn}, nil
		}}
		m := NewManager(api, store)
		m.Initialize(ctx)

		assert.True(t, m.Snapshot().Impersonating)
	})
}

func TestManager_ImpersonationRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	api := &fakeAuthAPI{
		adminLoginFunc: func(context.Context, string, string) (*LoginResult, error) {
			u := platform
			return &LoginResult{Token: "admin-tok", User: u}, nil
		},
		impersonateFunc: func(_ context.Context, token, targetUserID string) (*LoginResult, error) {
			if token != "admin-tok" {
				return nil, newError(KindAuthentication, "sesión expirada")
			}
			u, tn := tenantUser, andes
			return &LoginResult{Token: "imp-tok", User: u, Tenant: &tn}, nil
		},
		whoAmIFunc: func(_ context.Context, token string) (*WhoAmIResult, error) {
			if token != "admin-tok" {
				return nil, newError(KindAuthentication, "sesión expirada")
			}
			u := platform
			return &WhoAmIResult{User: u}, nil
		},
	}
	m := NewManager(api, store)
	require.NoError(t, m.AdminLogin(ctx, "root@admitio.com", "secret"))

	require.NoError(t, m.Impersonate(ctx, "u1"))
	during := m.Snapshot()
	assert.True(t, during.Impersonating)
	require.NotNil(t, during.Identity)
	assert.Equal(t, tenantUser.ID, during.Identity.ID)
	assert.True(t, during.Identity.Role.TenantScoped())
	require.NotNil(t, during.Tenant)

	require.NoError(t, m.ExitImpersonation(ctx))
	after := m.Snapshot()
	assert.False(t, after.Impersonating)
	require.NotNil(t, after.Identity)
	assert.Equal(t, platform.ID, after.Identity.ID)
	assert.Equal(t, platform.Role, after.Identity.Role)
	assert.Nil(t, after.Tenant)

	for _, key := range []string{KeyOriginalToken, KeyOriginalUser} {
		_, ok, _ := store.Get(ctx, key)
		assert.False(t, ok, "no leftover %s key", key)
	}
}

func TestManager_Impersonate_RequiresPlatformRole(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{
		loginFunc: tenantLoginStub("tok-1"),
		impersonateFunc: func(context.Context, string, string) (*LoginResult, error) {
			t.Fatal("backend must not be reached")
			return nil, nil
		},
	}
	m := NewManager(api, NewMemStore())
	require.NoError(t, m.Login(ctx, "andes", "maria@andes.edu", "secret"))

	err := m.Impersonate(ctx, "u2")
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
}

func TestManager_ExitImpersonation(t *testing.T) {
	t.Run("no-op when not impersonating", func(t *testing.T) {
		m := NewManager(&fakeAuthAPI{}, NewMemStore())
		assert.NoError(t, m.ExitImpersonation(context.Background()))
	})

	t.Run("restores locally even when revoke fails", func(t *testing.T) {
		ctx := context.Background()
		api := &fakeAuthAPI{
			adminLoginFunc: func(context.Context, string, string) (*LoginResult, error) {
				u := platform
				return &LoginResult{Token: "admin-tok", User: u}, nil
			},
			impersonateFunc: func(context.Context, string, string) (*LoginResult, error) {
				u, tn := tenantUser, andes
				return &LoginResult{Token: "imp-tok", User: u, Tenant: &tn}, nil
			},
			exitImpersonationFunc: func(context.Context, string) error {
				return newError(KindNetwork, "cannot reach server")
			},
			whoAmIFunc: func(context.Context, string) (*WhoAmIResult, error) {
				u := platform
				return &WhoAmIResult{User: u}, nil
			},
		}
		m := NewManager(api, NewMemStore())
		require.NoError(t, m.AdminLogin(ctx, "root@admitio.com", "secret"))
		require.NoError(t, m.Impersonate(ctx, "u1"))

		require.NoError(t, m.ExitImpersonation(ctx))
		s := m.Snapshot()
		require.NotNil(t, s.Identity)
		assert.Equal(t, platform.ID, s.Identity.ID)
		assert.Nil(t, s.Tenant)
	})

	t.Run("stale original token clears the whole session", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemStore()
		api := &fakeAuthAPI{
			adminLoginFunc: func(context.Context, string, string) (*LoginResult, error) {
				u := platform
				return &LoginResult{Token: "admin-tok", User: u}, nil
			},
			impersonateFunc: func(context.Context, string, string) (*LoginResult, error) {
				u, tn := tenantUser, andes
				return &LoginResult{Token: "imp-tok", User: u, Tenant: &tn}, nil
			},
			whoAmIFunc: func(context.Context, string) (*WhoAmIResult, error) {
				return nil, newError(KindAuthentication, "sesión expirada")
			},
		}
		m := NewManager(api, store)
		require.NoError(t, m.AdminLogin(ctx, "root@admitio.com", "secret"))
		require.NoError(t, m.Impersonate(ctx, "u1"))

		err := m.ExitImpersonation(ctx)
		require.Error(t, err)
		assert.True(t, IsAuthentication(err))
		assert.Nil(t, m.Snapshot().Identity)
		assert.Zero(t, store.Len())
	})
}

func TestManager_AcknowledgePasswordChange(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	api := &fakeAuthAPI{loginFunc: func(context.Context, string, string, string) (*LoginResult, error) {
		u := tenantUser
		u.MustChangePassword = true
		tn := andes
		return &LoginResult{Token: "tok-1", User: u, Tenant: &tn}, nil
	}}
	m := NewManager(api, store)
	require.NoError(t, m.Login(ctx, "andes", "maria@andes.edu", "temp-pass"))
	require.True(t, m.Snapshot().MustChangePassword())

	m.AcknowledgePasswordChange(ctx)

	s := m.Snapshot()
	assert.False(t, s.MustChangePassword())

	// The cleared flag must survive a reload.
	raw, ok, _ := store.Get(ctx, KeyUser)
	require.True(t, ok)
	var persisted Identity
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.False(t, persisted.MustChangePassword)
}

func TestManager_InvalidateSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	api := &fakeAuthAPI{loginFunc: tenantLoginStub("tok-1")}
	m := NewManager(api, store)
	require.NoError(t, m.Login(ctx, "andes", "maria@andes.edu", "secret"))

	m.InvalidateSession(ctx)

	s := m.Snapshot()
	assert.Nil(t, s.Identity)
	assert.Nil(t, s.Tenant)
	assert.NotEmpty(t, s.LastError)
	assert.Zero(t, store.Len(), "every persisted key must be gone")

	// Repeated rejections after the clear change nothing.
	m.InvalidateSession(ctx)
	assert.Equal(t, s.LastError, m.Snapshot().LastError)
}

// Mutating operations racing each other must land in one of the serial
// outcomes: either the impersonation is active with its saved-session keys
// intact, or it is fully unwound with no impersonation_original_* leftovers.
func TestManager_ConcurrentImpersonationCycles(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	api := &fakeAuthAPI{
		adminLoginFunc: func(context.Context, string, string) (*LoginResult, error) {
			u := platform
			return &LoginResult{Token: "admin-tok", User: u}, nil
		},
		impersonateFunc: func(context.Context, string, string) (*LoginResult, error) {
			time.Sleep(2 * time.Millisecond) // keep the critical section open
			u, tn := tenantUser, andes
			return &LoginResult{Token: "imp-tok", User: u, Tenant: &tn}, nil
		},
		exitImpersonationFunc: func(context.Context, string) error {
			time.Sleep(2 * time.Millisecond)
			return nil
		},
		whoAmIFunc: func(_ context.Context, token string) (*WhoAmIResult, error) {
			if token != "admin-tok" {
				return nil, newError(KindAuthentication, "sesión expirada")
			}
			u := platform
			return &WhoAmIResult{User: u}, nil
		},
	}
	m := NewManager(api, store)
	require.NoError(t, m.AdminLogin(ctx, "root@admitio.com", "secret"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Impersonate(ctx, "u1")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.ExitImpersonation(ctx)
		}()
	}
	wg.Wait()

	s := m.Snapshot()
	require.NotNil(t, s.Identity, "some session must survive the storm")

	_, savedToken, _ := store.Get(ctx, KeyOriginalToken)
	_, savedUser, _ := store.Get(ctx, KeyOriginalUser)
	if s.Impersonating {
		assert.Equal(t, tenantUser.ID, s.Identity.ID)
		assert.True(t, savedToken, "active impersonation needs its saved token")
		assert.True(t, savedUser, "active impersonation needs its saved user")
	} else {
		assert.Equal(t, platform.ID, s.Identity.ID)
		assert.False(t, savedToken, "unwound impersonation must leave no saved token")
		assert.False(t, savedUser, "unwound impersonation must leave no saved user")
	}
}

// Login and Logout racing each other must leave memory and storage telling
// the same story, whichever of them lands last.
func TestManager_ConcurrentLoginLogout(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	api := &fakeAuthAPI{loginFunc: func(ctx context.Context, slug, email, password string) (*LoginResult, error) {
		time.Sleep(2 * time.Millisecond)
		return tenantLoginStub("tok-1")(ctx, slug, email, password)
	}}
	m := NewManager(api, store)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Login(ctx, "andes", "maria@andes.edu", "secret")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Logout(ctx)
		}()
	}
	wg.Wait()

	s := m.Snapshot()
	_, tokenStored, _ := store.Get(ctx, KeyToken)
	if s.Identity == nil {
		assert.Nil(t, s.Tenant)
		assert.False(t, tokenStored)
		assert.Zero(t, store.Len())
	} else {
		assert.NotNil(t, s.Tenant)
		assert.True(t, tokenStored)
	}
}
