package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
)

const sessionFile = "session.json"

// FileStore implements sdk.Store using a JSON file under ~/.admitio.
// This is the CLI's session persistence implementation.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// Ensure FileStore implements sdk.Store at compile time.
var _ sdk.Store = (*FileStore)(nil)

// NewFileStore creates a new FileStore rooted in the user's home directory.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	admitioDir := filepath.Join(home, ".admitio")
	if err := os.MkdirAll(admitioDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .admitio directory: %w", err)
	}
	return &FileStore{
		path: filepath.Join(admitioDir, sessionFile),
	}, nil
}

// NewFileStoreAt creates a FileStore backed by an explicit file path. The
// parent directory must exist.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := data[key]
	return value, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data[key] = value
	return s.save(data)
}

func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(data, key)
	}
	return s.save(data)
}

func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	return data, nil
}

func (s *FileStore) save(data map[string]string) error {
	if len(data) == 0 {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return nil
		}
		return os.Remove(s.path)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}
	return os.WriteFile(s.path, raw, 0600)
}
