package memory

import (
	"context"

	"cachequest/internal/domain/session"
)

type SessionRepo struct {
	store *Store
}

func NewSessionRepo(store *Store) SessionRepo {
	return SessionRepo{store: store}
}

func (r SessionRepo) Get(_ context.Context, playerID string) (session.Snapshot, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	snap, ok := r.store.snapshots[playerID]
	return snap, ok, nil
}

func (r SessionRepo) Save(_ context.Context, playerID string, snap session.Snapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.snapshots[playerID] = snap
	return nil
}

func (r SessionRepo) Delete(_ context.Context, playerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.snapshots, playerID)
	return nil
}
