package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// FileStore keeps preferences in a JSON document keyed by scope:
//
//	{"local": {"theme": "dark"}}
type FileStore struct {
	path  string
	scope string
	mu    sync.Mutex
}

// NewFileStore creates a store backed by the JSON file at path.
// The file is created on first Set.
func NewFileStore(path, scope string) *FileStore {
	return &FileStore{path: path, scope: scope}
}

// Get returns the value stored for key in this store's scope.
func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := doc[s.scope][key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return v, nil
}

// Set writes key=value and rewrites the file atomically.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if doc[s.scope] == nil {
		doc[s.scope] = make(map[string]string)
	}
	doc[s.scope][key] = value
	return s.save(doc)
}

// Close is a no-op; the file is not held open.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) load() (map[string]map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	doc := make(map[string]map[string]string)
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return doc, nil
}

func (s *FileStore) save(doc map[string]map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing preferences: %w", err)
	}
	return nil
}
