package loader

import "sync"

// Store holds the current load result. Loaded once at startup, read-only
// during requests; only a reload swaps it.
type Store struct {
	mu  sync.RWMutex
	res Result
}

func NewStore() *Store { return &Store{} }

func (s *Store) Set(res Result) {
	s.mu.Lock()
	s.res = res
	s.mu.Unlock()
}

// Snapshot returns the current result. Callers must treat it as read-only.
func (s *Store) Snapshot() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.res
}
