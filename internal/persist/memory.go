package persist

import "sync"

// MemoryStore keeps values in memory. Blocking it makes every operation fail
// with ErrUnavailable, which stands in for storage disabled by the user.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	blocked bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// SetBlocked toggles unavailability.
func (s *MemoryStore) SetBlocked(blocked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked = blocked
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocked {
		return "", false, ErrUnavailable
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocked {
		return ErrUnavailable
	}
	s.values[key] = value
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocked {
		return ErrUnavailable
	}
	delete(s.values, key)
	return nil
}
