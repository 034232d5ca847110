package sdk

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Session is a point-in-time snapshot of the authentication state. Snapshots
// are value copies: reading one is always safe, including while a mutating
// operation is in flight, and reflects the last committed state.
type Session struct {
	Ready         bool
	Identity      *Identity
	Tenant        *Tenant
	Impersonating bool
	LastError     string
}

// IsAuthenticated reports whether an identity is established.
func (s Session) IsAuthenticated() bool { return s.Identity != nil }

// IsSuperOwner reports whether the identity holds a platform role.
func (s Session) IsSuperOwner() bool {
	return s.Identity != nil && s.Identity.Role.Platform()
}

// IsSupremo reports whether the identity is the supreme super owner.
func (s Session) IsSupremo() bool {
	return s.Identity != nil && s.Identity.Role == RoleSuperOwnerSupremo
}

// IsKeymaster reports whether the identity is a tenant keymaster. Platform
// roles do not count; keymaster-level reach for super owners is granted at
// the gating layer, not here.
func (s Session) IsKeymaster() bool {
	return s.Identity != nil && s.Identity.Role == RoleKeymaster
}

// IsEncargado reports whether the identity is a tenant encargado.
func (s Session) IsEncargado() bool {
	return s.Identity != nil && s.Identity.Role == RoleEncargado
}

// IsAsistente reports whether the identity is a tenant asistente.
func (s Session) IsAsistente() bool {
	return s.Identity != nil && s.Identity.Role == RoleAsistente
}

// MustChangePassword reports whether a password change is mandatory before
// other views become reachable.
func (s Session) MustChangePassword() bool {
	return s.Identity != nil && s.Identity.MustChangePassword
}

// savedSession holds what is needed to restore a super owner's own session
// after impersonation ends.
type savedSession struct {
	Token    string
	Identity Identity
}

// Manager is the single authority for who is logged in, as which tenant, and
// under which role. All mutating operations are serialized; overlapping calls
// queue rather than interleave. Reads go through Snapshot.
type Manager struct {
	api   AuthAPI
	store Store
	log   *slog.Logger

	// opMu serializes the mutating operations end to end, including their
	// storage writes. Without it, Impersonate immediately followed by
	// ExitImpersonation could restore a half-written saved session.
	opMu sync.Mutex

	// mu guards the committed state below.
	mu        sync.RWMutex
	ready     bool
	token     string
	identity  *Identity
	tenant    *Tenant
	saved     *savedSession
	lastError string

	initStarted atomic.Bool
}

// ManagerOption mutates Manager construction.
type ManagerOption func(*Manager)

// WithManagerLogger overrides the Manager's logger.
func WithManagerLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) { m.log = log }
}

// NewManager creates a session Manager backed by the given auth backend and
// key-value store. Call Initialize once at startup before reading snapshots.
func NewManager(api AuthAPI, store Store, optFns ...ManagerOption) *Manager {
	m := &Manager{
		api:   api,
		store: store,
		log:   slog.Default(),
	}
	for _, fn := range optFns {
		fn(m)
	}
	return m
}

// Snapshot returns a copy of the committed session state.
func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Session{
		Ready:         m.ready,
		Impersonating: m.saved != nil,
		LastError:     m.lastError,
	}
	if m.identity != nil {
		id := *m.identity
		s.Identity = &id
	}
	if m.tenant != nil {
		t := *m.tenant
		s.Tenant = &t
	}
	return s
}

// Token returns the current bearer token, or the empty string when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Initialize restores the session from storage and re-validates it against
// the backend. It runs at most once per Manager; re-entrant calls are no-ops.
// A stored token the backend rejects results in a full local logout — the
// failure is recovered here, never propagated, so startup gating is never
// blocked.
func (m *Manager) Initialize(ctx context.Context) {
	if !m.initStarted.CompareAndSwap(false, true) {
		return
	}
	m.opMu.Lock()
	defer m.opMu.Unlock()
	defer func() {
		m.mu.Lock()
		m.ready = true
		m.mu.Unlock()
	}()

	token, ok, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		m.log.Warn("session store unreadable", slog.String("error", err.Error()))
		return
	}
	if !ok || token == "" {
		return
	}

	// Optimistic restore of the cached identity for immediate render. The
	// state stays not-ready until the backend confirms or rejects it.
	m.mu.Lock()
	m.token = token
	if raw, ok, _ := m.store.Get(ctx, KeyUser); ok {
		var id Identity
		if json.Unmarshal([]byte(raw), &id) == nil {
			m.identity = &id
		}
	}
	if raw, ok, _ := m.store.Get(ctx, KeyTenant); ok {
		var t Tenant
		if json.Unmarshal([]byte(raw), &t) == nil {
			m.tenant = &t
		}
	}
	m.mu.Unlock()

	res, err := m.api.WhoAmI(ctx, token)
	if err != nil {
		// A stale token must never leave the client looking authenticated.
		m.log.Warn("stored session rejected, logging out", slog.String("error", err.Error()))
		m.clear(ctx)
		return
	}

	m.commit(ctx, token, res.User, res.Tenant)

	if savedToken, ok, _ := m.store.Get(ctx, KeyOriginalToken); ok {
		saved := savedSession{Token: savedToken}
		if raw, ok, _ := m.store.Get(ctx, KeyOriginalUser); ok {
			_ = json.Unmarshal([]byte(raw), &saved.Identity)
		}
		m.mu.Lock()
		m.saved = &saved
		m.mu.Unlock()
	}
}

// Login authenticates a tenant-scoped user and establishes the session.
// An empty tenant slug fails with a validation error before any network call.
func (m *Manager) Login(ctx context.Context, tenantSlug, email, password string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.setLastError("")

	if strings.TrimSpace(tenantSlug) == "" {
		err := newError(KindValidation, "tenant slug is required")
		m.setLastError(err.Message)
		return err
	}

	res, err := m.api.Login(ctx, tenantSlug, email, password)
	if err != nil {
		m.setLastError(err.Error())
		return err
	}

	m.commit(ctx, res.Token, res.User, res.Tenant)
	return nil
}

// AdminLogin authenticates a platform super owner. The tenant is cleared
// unconditionally: platform identities are never tenant-scoped, even when a
// previous session left a tenant behind in storage.
func (m *Manager) AdminLogin(ctx context.Context, email, password string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.setLastError("")

	res, err := m.api.AdminLogin(ctx, email, password)
	if err != nil {
		m.setLastError(err.Error())
		return err
	}

	m.commit(ctx, res.Token, res.User, nil)
	return nil
}

// Logout clears the session unconditionally, in memory and in storage.
// It is idempotent and has no network precondition.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.clear(ctx)
}

// InvalidateSession discards the session after the backend rejected its
// token somewhere outside the auth flow. A 401 means the same thing on every
// endpoint, so the reaction is the same full clear a failed startup
// re-validation gets, plus a LastError the next status check can surface.
func (m *Manager) InvalidateSession(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if m.Snapshot().Identity == nil {
		return
	}
	m.log.Warn("session rejected by the backend, logging out")
	m.clear(ctx)
	m.setLastError("session expired or rejected by the server")
}

// Impersonate switches the session to the target user on behalf of a platform
// super owner. The current token and identity are saved durably before the
// swap so ExitImpersonation can restore them, even across a reload.
func (m *Manager) Impersonate(ctx context.Context, targetUserID string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.setLastError("")

	m.mu.RLock()
	current := m.identity
	currentToken := m.token
	m.mu.RUnlock()

	if current == nil || !current.Role.Platform() {
		err := newError(KindAuthorization, "impersonation requires a super owner session")
		m.setLastError(err.Message)
		return err
	}

	res, err := m.api.Impersonate(ctx, currentToken, targetUserID)
	if err != nil {
		m.setLastError(err.Error())
		return err
	}

	// Save the original session before touching the live one. If the save
	// fails the swap is abandoned: a corrupted restore point is worse than a
	// failed impersonation.
	rawUser, err := json.Marshal(current)
	if err != nil {
		return wrapError(KindServer, err, "encode original identity")
	}
	if err := m.store.Set(ctx, KeyOriginalToken, currentToken); err != nil {
		m.setLastError(err.Error())
		return wrapError(KindServer, err, "save original token")
	}
	if err := m.store.Set(ctx, KeyOriginalUser, string(rawUser)); err != nil {
		m.setLastError(err.Error())
		return wrapError(KindServer, err, "save original identity")
	}

	m.mu.Lock()
	m.saved = &savedSession{Token: currentToken, Identity: *current}
	m.mu.Unlock()

	m.commit(ctx, res.Token, res.User, res.Tenant)
	return nil
}

// ExitImpersonation restores the super owner's own session. The backend
// revoke is best-effort: control must always return to the super owner even
// when the grant cannot be revoked remotely. A no-op when not impersonating.
func (m *Manager) ExitImpersonation(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.setLastError("")

	m.mu.RLock()
	saved := m.saved
	grantToken := m.token
	m.mu.RUnlock()

	if saved == nil {
		return nil
	}

	if err := m.api.ExitImpersonation(ctx, grantToken); err != nil {
		m.log.Warn("impersonation revoke failed, restoring locally", slog.String("error", err.Error()))
	}

	m.mu.Lock()
	m.saved = nil
	m.mu.Unlock()
	if err := m.store.Delete(ctx, KeyOriginalToken, KeyOriginalUser); err != nil {
		m.log.Warn("failed to clear impersonation keys", slog.String("error", err.Error()))
	}

	m.commit(ctx, saved.Token, saved.Identity, nil)

	// Re-validate the restored token. Tenant stays nil for a platform
	// identity; an authentication failure here means the original token went
	// stale while impersonating, which invalidates the whole session.
	res, err := m.api.WhoAmI(ctx, saved.Token)
	if err != nil {
		if IsAuthentication(err) {
			m.clear(ctx)
			m.setLastError(err.Error())
			return err
		}
		m.log.Warn("post-impersonation re-validation failed", slog.String("error", err.Error()))
		return nil
	}

	m.commit(ctx, saved.Token, res.User, nil)
	return nil
}

// AcknowledgePasswordChange clears the mandatory-password-change flag after
// the caller has confirmed the backend accepted a new password. Local only;
// it never calls the backend.
func (m *Manager) AcknowledgePasswordChange(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if m.identity == nil || !m.identity.MustChangePassword {
		m.mu.Unlock()
		return
	}
	m.identity.MustChangePassword = false
	id := *m.identity
	m.mu.Unlock()

	m.persistIdentity(ctx, id)
}

// commit replaces the live token, identity and tenant and mirrors them to
// storage in the same logical step, so a reload reconstructs an equivalent
// state.
func (m *Manager) commit(ctx context.Context, token string, id Identity, tenant *Tenant) {
	m.mu.Lock()
	m.token = token
	idCopy := id
	m.identity = &idCopy
	if tenant != nil {
		tCopy := *tenant
		m.tenant = &tCopy
	} else {
		m.tenant = nil
	}
	m.mu.Unlock()

	if err := m.store.Set(ctx, KeyToken, token); err != nil {
		m.log.Warn("failed to persist token", slog.String("error", err.Error()))
	}
	m.persistIdentity(ctx, id)
	if tenant != nil {
		if raw, err := json.Marshal(tenant); err == nil {
			if err := m.store.Set(ctx, KeyTenant, string(raw)); err != nil {
				m.log.Warn("failed to persist tenant", slog.String("error", err.Error()))
			}
		}
	} else {
		if err := m.store.Delete(ctx, KeyTenant); err != nil {
			m.log.Warn("failed to clear tenant", slog.String("error", err.Error()))
		}
	}
}

func (m *Manager) persistIdentity(ctx context.Context, id Identity) {
	raw, err := json.Marshal(id)
	if err != nil {
		m.log.Warn("failed to encode identity", slog.String("error", err.Error()))
		return
	}
	if err := m.store.Set(ctx, KeyUser, string(raw)); err != nil {
		m.log.Warn("failed to persist identity", slog.String("error", err.Error()))
	}
}

// clear wipes every in-memory field and every persisted key. Ready state is
// preserved: a cleared session is still a decided one.
func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.identity = nil
	m.tenant = nil
	m.saved = nil
	m.lastError = ""
	m.mu.Unlock()

	if err := m.store.Delete(ctx, sessionKeys...); err != nil {
		m.log.Warn("failed to clear session storage", slog.String("error", err.Error()))
	}
}

func (m *Manager) setLastError(msg string) {
	m.mu.Lock()
	m.lastError = msg
	m.mu.Unlock()
}
