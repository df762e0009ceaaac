package ports

import (
	"context"

	"cachequest/internal/domain/session"
)

// SessionRepository is the persistence gateway for full session snapshots,
// one snapshot per player key. Get reports absence with ok=false rather
// than an error; a missing prior session is a normal first run.
type SessionRepository interface {
	Get(ctx context.Context, playerID string) (session.Snapshot, bool, error)
	Save(ctx context.Context, playerID string, snap session.Snapshot) error
	Delete(ctx context.Context, playerID string) error
}
