package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	m "ldform.dev/pkg/ldform/internal/model"
)

// FileUserStore keeps every user in one JSON document.
type FileUserStore struct {
	path string
	mu   sync.Mutex
}

// NewFileUserStore creates a store backed by path. The file is created on the
// first write.
func NewFileUserStore(path string) *FileUserStore {
	return &FileUserStore{path: path}
}

func (s *FileUserStore) load() (map[string]userRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]userRecord{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read user store: %w", err)
	}

	users := map[string]userRecord{}
	if len(data) == 0 {
		return users, nil
	}

	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode user store %s: %w", s.path, err)
	}

	return users, nil
}

// save writes through a temporary file so readers never see a partial document.
func (s *FileUserStore) save(users map[string]userRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("write user store: %w", err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write user store: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

// Get implements UserStore.
func (s *FileUserStore) Get(_ context.Context, name string) (m.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return m.User{}, err
	}

	rec, ok := users[name]
	if !ok {
		return m.User{}, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}

	return fromRecord(name, rec), nil
}

// List implements UserStore.
func (s *FileUserStore) List(_ context.Context) ([]m.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]m.User, 0, len(users))
	for name, rec := range users {
		out = append(out, fromRecord(name, rec))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// Put implements UserStore.
func (s *FileUserStore) Put(_ context.Context, user m.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	users[user.Name] = toRecord(user)

	return s.save(users)
}

// Delete implements UserStore.
func (s *FileUserStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := users[name]; !ok {
		return fmt.Errorf("user %q: %w", name, ErrNotFound)
	}

	delete(users, name)

	return s.save(users)
}

// Close implements UserStore.
func (s *FileUserStore) Close() error {
	return nil
}
