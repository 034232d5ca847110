package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authBackend(t *testing.T, handler http.HandlerFunc) *AuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAuthClient(srv.URL)
}

func TestAuthClient_Login(t *testing.T) {
	t.Run("sends credentials and decodes the session", func(t *testing.T) {
		client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
			assert.Empty(t, r.Header.Get("Authorization"), "login is unauthenticated")

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "andes", body["tenant"])
			assert.Equal(t, "maria@andes.edu", body["email"])

			json.NewEncoder(w).Encode(map[string]any{
				"token": "tok-1",
				"user": map[string]any{
					"id": "u1", "nombre": "Maria Perez", "email": "maria@andes.edu",
					"rol": "keymaster", "debeCambiarPassword": false,
				},
				"tenant": map[string]any{
					"id": "t1", "nombre": "Instituto Andes", "slug": "andes", "plan": "pro",
				},
			})
		})

		res, err := client.Login(context.Background(), "andes", "maria@andes.edu", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", res.Token)
		assert.Equal(t, RoleKeymaster, res.User.Role)
		require.NotNil(t, res.Tenant)
		assert.Equal(t, PlanPro, res.Tenant.Plan)
	})

	t.Run("bad credentials map to an authentication error with the backend message", func(t *testing.T) {
		client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "credenciales inválidas"})
		})

		_, err := client.Login(context.Background(), "andes", "maria@andes.edu", "wrong")
		require.Error(t, err)
		assert.True(t, IsAuthentication(err))
		assert.Equal(t, "credenciales inválidas", err.Error())
	})

	t.Run("unreachable backend maps to a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := NewAuthClient(srv.URL)

		_, err := client.Login(context.Background(), "andes", "a@b.com", "x")
		require.Error(t, err)
		assert.True(t, IsNetwork(err))
	})
}

func TestAuthClient_AdminLogin_NeverCarriesTenant(t *testing.T) {
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/admin/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"token": "admin-tok",
			"user":  map[string]any{"id": "so1", "rol": "super_owner"},
			// A misbehaving proxy could inject a tenant; the client drops it.
			"tenant": map[string]any{"id": "t1", "slug": "andes"},
		})
	})

	res, err := client.AdminLogin(context.Background(), "root@admitio.com", "secret")
	require.NoError(t, err)
	assert.Nil(t, res.Tenant)
}

func TestAuthClient_WhoAmI(t *testing.T) {
	t.Run("sends the bearer token", func(t *testing.T) {
		client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"user": map[string]any{"id": "u1", "rol": "encargado"},
			})
		})

		res, err := client.WhoAmI(context.Background(), "tok-1")
		require.NoError(t, err)
		assert.Equal(t, RoleEncargado, res.User.Role)
		assert.Nil(t, res.Tenant)
	})

	t.Run("expired token maps to authentication", func(t *testing.T) {
		client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "sesión expirada"})
		})

		_, err := client.WhoAmI(context.Background(), "stale")
		assert.True(t, IsAuthentication(err))
	})
}

func TestAuthClient_Impersonate(t *testing.T) {
	t.Run("targets the user path and returns the grant", func(t *testing.T) {
		client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/impersonar/u42", r.URL.Path)
			assert.Equal(t, "Bearer admin-tok", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"token":  "imp-tok",
				"user":   map[string]any{"id": "u42", "rol": "asistente"},
				"tenant": map[string]any{"id": "t1", "slug": "andes", "plan": "free"},
			})
		})

		res, err := client.Impersonate(context.Background(), "admin-tok", "u42")
		require.NoError(t, err)
		assert.Equal(t, "imp-tok", res.Token)
		require.NotNil(t, res.Tenant)
	})

	t.Run("forbidden maps to authorization", func(t *testing.T) {
		client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "requiere rol super_owner"})
		})

		_, err := client.Impersonate(context.Background(), "tok", "u42")
		assert.True(t, IsAuthorization(err))
	})
}

func TestAuthClient_ChangePassword_ValidationError(t *testing.T) {
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/cambiar-password", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "la contraseña no cumple la política"})
	})

	err := client.ChangePassword(context.Background(), "tok", "old", "weak")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRestCore_ServerErrorWithoutBody(t *testing.T) {
	client := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.WhoAmI(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, IsServer(err))
	assert.Contains(t, err.Error(), "500")
}
