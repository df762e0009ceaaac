package session

import (
	"sort"

	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

// ArchiveEntry is one persisted ["i,j", memento] pair. The two-element
// array encoding matches previously stored sessions and must not change.
type ArchiveEntry [2]string

func (e ArchiveEntry) Key() string {
	return e[0]
}

func (e ArchiveEntry) Memento() string {
	return e[1]
}

// Snapshot is the unit persisted across sessions: the player's side of the
// world plus the cache archive. The active set is deliberately absent; it
// is derivable by re-running reconciliation against the restored archive
// and position.
type Snapshot struct {
	PlayerTokens    []cache.Token  `json:"playerTokens"`
	PlayerPosition  geo.Point      `json:"playerPosition"`
	MovementHistory []geo.Point    `json:"movementHistory"`
	ArchivedCaches  []ArchiveEntry `json:"archivedCaches"`
}

// ArchiveEntries converts an archive map into sorted pairs so snapshots
// serialize deterministically.
func ArchiveEntries(archive map[string]string) []ArchiveEntry {
	keys := make([]string, 0, len(archive))
	for key := range archive {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]ArchiveEntry, 0, len(keys))
	for _, key := range keys {
		out = append(out, ArchiveEntry{key, archive[key]})
	}
	return out
}

// ArchiveMap rebuilds the archive map from persisted pairs.
func ArchiveMap(entries []ArchiveEntry) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key()] = e.Memento()
	}
	return out
}
