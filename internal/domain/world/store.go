package world

import (
	"fmt"
	"sort"

	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

type Config struct {
	Grid             *geo.Grid
	Generator        geo.Generator
	SpawnProbability float64
}

func DefaultConfig() Config {
	return Config{
		Generator:        geo.HashGenerator,
		SpawnProbability: 0.1,
	}
}

// Store owns the world's cache state: the active set (caches inside the
// player's neighborhood, live in memory) and the archive (a memento per
// cell ever spawned, never deleted). Nothing outside the store mutates
// either map.
type Store struct {
	grid             *geo.Grid
	gen              geo.Generator
	spawnProbability float64

	active  map[string]*cache.Cache
	archive map[string]string
}

func NewStore(cfg Config) *Store {
	def := DefaultConfig()
	if cfg.Grid == nil {
		cfg.Grid = geo.NewGrid(geo.DefaultGridConfig())
	}
	if cfg.Generator == nil {
		cfg.Generator = def.Generator
	}
	if cfg.SpawnProbability <= 0 {
		cfg.SpawnProbability = def.SpawnProbability
	}
	return &Store{
		grid:             cfg.Grid,
		gen:              cfg.Generator,
		spawnProbability: cfg.SpawnProbability,
		active:           make(map[string]*cache.Cache),
		archive:          make(map[string]string),
	}
}

func (s *Store) Grid() *geo.Grid {
	return s.grid
}

// SpawnPredicate decides whether a cell is ever a cache location. It is a
// pure function of the cell coordinates, so its verdict never changes
// across moves or restarts; only the cell's active/archived status does.
func (s *Store) SpawnPredicate(c *geo.Cell) bool {
	return s.gen(c.Key()) < s.spawnProbability
}

// Reconcile rebuilds the active set for a new player position: archive
// every active cache, then walk the neighborhood and activate each cell
// that passes the spawn predicate, restoring from the archive when an
// entry exists and spawning fresh (and archiving immediately) when not.
// The new set is built aside and swapped in at the end, so observers never
// see a half-populated world.
func (s *Store) Reconcile(p geo.Point) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	next := make(map[string]*cache.Cache)
	for _, cell := range s.grid.Neighborhood(p) {
		if !s.SpawnPredicate(cell) {
			continue
		}
		key := cell.Key()
		if memento, ok := s.archive[key]; ok {
			restored, err := cache.Restored(memento, s.grid)
			if err != nil {
				return fmt.Errorf("restore cache %s: %w", key, err)
			}
			next[key] = restored
			continue
		}
		fresh := cache.New(cell, s.gen)
		memento, err := fresh.ToMemento()
		if err != nil {
			return fmt.Errorf("archive fresh cache %s: %w", key, err)
		}
		s.archive[key] = memento
		next[key] = fresh
	}
	s.active = next
	return nil
}

// SyncArchive writes every active cache back to the archive without
// touching the active set. Run before any persistence snapshot so token
// moves since the last reconciliation are never lost.
func (s *Store) SyncArchive() error {
	for key, c := range s.active {
		memento, err := c.ToMemento()
		if err != nil {
			return fmt.Errorf("archive cache %s: %w", key, err)
		}
		s.archive[key] = memento
	}
	return nil
}

// ActiveCache returns the live cache for an "i,j" key, if that cell is
// currently inside the neighborhood.
func (s *Store) ActiveCache(key string) (*cache.Cache, bool) {
	c, ok := s.active[key]
	return c, ok
}

// ActiveCaches returns the active set sorted by key.
func (s *Store) ActiveCaches() []*cache.Cache {
	keys := make([]string, 0, len(s.active))
	for key := range s.active {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]*cache.Cache, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.active[key])
	}
	return out
}

func (s *Store) ActiveSize() int {
	return len(s.active)
}

// ArchiveSnapshot returns a copy of the archive after syncing the active
// set into it.
func (s *Store) ArchiveSnapshot() (map[string]string, error) {
	if err := s.SyncArchive(); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(s.archive))
	for key, memento := range s.archive {
		out[key] = memento
	}
	return out, nil
}

// RestoreArchive replaces the archive with persisted entries. The caller
// reconciles afterwards to rebuild the active set; archive membership is
// never persisted or restored directly.
func (s *Store) RestoreArchive(entries map[string]string) {
	s.archive = make(map[string]string, len(entries))
	for key, memento := range entries {
		s.archive[key] = memento
	}
	s.active = make(map[string]*cache.Cache)
}

// Reset drops all world state, active and archived.
func (s *Store) Reset() {
	s.active = make(map[string]*cache.Cache)
	s.archive = make(map[string]string)
}
