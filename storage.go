package sdk

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the key-value persistence capability injected into the
// session store and the intent slot. A missing key is a normal state, not
// an error.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStorage keeps values in process memory. It backs tests and the
// short-lived intent slot, and is the default when no durable storage is
// configured.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStorage persists values as a JSON object in a single file, created
// with 0600. It survives restarts within the same user profile, the
// client-side analogue of durable keyed storage.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates the parent directory if needed and returns a
// store backed by path.
func NewFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.load()
	v, ok := values[key]
	return v, ok
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.load()
	values[key] = value
	return s.flush(values)
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.load()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.flush(values)
}

// load tolerates a missing or corrupt file; both read as empty.
func (s *FileStorage) load() map[string]string {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return values
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return make(map[string]string)
	}
	return values
}

func (s *FileStorage) flush(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
