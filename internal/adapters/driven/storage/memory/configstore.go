package memory

import (
	"sync"

	"github.com/custodia-labs/sentiment-cli/internal/configvalue"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Used by tests and by commands that
// must not touch the user's config file.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// NewConfigStoreFrom creates a store holding a copy of values.
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	s := NewConfigStore()
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) lookup(key string) any {
	val, _ := s.Get(key)
	return val
}

// GetString returns the value as a string, or "" if absent or not a string.
func (s *ConfigStore) GetString(key string) string {
	v, _ := configvalue.String(s.lookup(key))
	return v
}

// GetInt returns the value as an int, or 0 if absent or not integral.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := configvalue.Int(s.lookup(key))
	return v
}

// GetFloat returns the value as a float64, or 0 if absent or not numeric.
func (s *ConfigStore) GetFloat(key string) float64 {
	v, _ := configvalue.Float(s.lookup(key))
	return v
}

// GetBool returns the value as a bool, or false if absent or not a bool.
func (s *ConfigStore) GetBool(key string) bool {
	v, _ := configvalue.Bool(s.lookup(key))
	return v
}

// GetStringSlice returns the value as a string slice, or nil.
func (s *ConfigStore) GetStringSlice(key string) []string {
	v, _ := configvalue.Strings(s.lookup(key))
	return v
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error {
	return nil
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns ":memory:".
func (s *ConfigStore) Path() string {
	return ":memory:"
}
