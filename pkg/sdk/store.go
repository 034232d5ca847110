package sdk

import (
	"context"
	"sync"
)

// Storage keys used by the session Manager. No other component writes these.
const (
	KeyToken         = "token"
	KeyUser          = "user"
	KeyTenant        = "tenant"
	KeyOriginalToken = "impersonation_original_token"
	KeyOriginalUser  = "impersonation_original_user"
)

// sessionKeys lists every key the Manager owns, in clearing order.
var sessionKeys = []string{KeyToken, KeyUser, KeyTenant, KeyOriginalToken, KeyOriginalUser}

// Store is the durable key-value storage the session survives reloads in.
// Implementations hold string values with no expiry logic of their own.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// MemStore is an in-memory Store. It is the implementation used by tests and
// by callers that explicitly opt out of persistence.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Len returns the number of stored keys.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
