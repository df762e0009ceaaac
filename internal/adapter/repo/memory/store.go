package memory

import (
	"sync"

	"cachequest/internal/domain/session"
)

// Store backs the in-memory session repository, used by unit tests and by
// DSN-less development runs.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]session.Snapshot
}

func NewStore() *Store {
	return &Store{
		snapshots: make(map[string]session.Snapshot),
	}
}

// SeedSnapshot primes a persisted session, mainly for tests.
func (s *Store) SeedSnapshot(playerID string, snap session.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[playerID] = snap
}
