package guestbook

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Store is a local key-value store of raw bytes. Load returns nil data and
// no error for a key that was never saved.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

const storeObject = "guestbook"

// GDataStore keeps values in the per-user application data directory.
type GDataStore struct {
	m *gdata.Manager
}

// OpenGDataStore opens (and creates if needed) the data directory of
// appName.
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open app data %s: %w", appName, err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load(key string) ([]byte, error) {
	if !s.m.ObjectPropExists(storeObject, key) {
		return nil, nil
	}
	data, err := s.m.LoadObjectProp(storeObject, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, nil
}

func (s *GDataStore) Save(key string, data []byte) error {
	if err := s.m.SaveObjectProp(storeObject, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// MemoryStore is the degraded-mode store used when no data directory is
// available. Nothing survives the process.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), d...), nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), data...)
	s.mu.Unlock()
	return nil
}
