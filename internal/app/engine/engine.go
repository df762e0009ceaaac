package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cachequest/internal/app/ports"
	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
	"cachequest/internal/domain/player"
	"cachequest/internal/domain/session"
	"cachequest/internal/domain/world"
)

var (
	ErrInvalidDirection = errors.New("invalid move direction")
	ErrCacheNotActive   = errors.New("cache is not active")
)

type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
)

type Config struct {
	World    *world.Store
	Origin   geo.Point
	PlayerID string
	Sessions ports.SessionRepository
	Notifier ports.StateNotifier
}

// Engine owns one game session: the world store, the player state, and the
// persistence gateway. Every command runs synchronously under the engine
// mutex, so observers never see a session mid-mutation.
type Engine struct {
	mu       sync.Mutex
	world    *world.Store
	player   *player.State
	origin   geo.Point
	playerID string
	sessions ports.SessionRepository
	notifier ports.StateNotifier
}

// New builds the engine and reconciles the world around the origin so the
// initial active set is populated before the first command arrives.
func New(cfg Config) (*Engine, error) {
	if cfg.World == nil {
		cfg.World = world.NewStore(world.DefaultConfig())
	}
	if cfg.PlayerID == "" {
		cfg.PlayerID = "player-1"
	}
	e := &Engine{
		world:    cfg.World,
		player:   player.NewState(cfg.Origin),
		origin:   cfg.Origin,
		playerID: cfg.PlayerID,
		sessions: cfg.Sessions,
		notifier: cfg.Notifier,
	}
	if err := e.world.Reconcile(cfg.Origin); err != nil {
		return nil, fmt.Errorf("initial reconcile: %w", err)
	}
	return e, nil
}

// Move steps the player one tile width in a cardinal direction and
// reconciles the world around the new position. An unrecognized direction
// is a caller contract violation, reported as ErrInvalidDirection.
func (e *Engine) Move(dir Direction) (geo.Point, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	step := e.world.Grid().TileWidth()
	p := e.player.Position()
	switch dir {
	case DirectionNorth:
		p.Lat += step
	case DirectionSouth:
		p.Lat -= step
	case DirectionEast:
		p.Lng += step
	case DirectionWest:
		p.Lng -= step
	default:
		return geo.Point{}, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if err := e.moveTo(p); err != nil {
		return geo.Point{}, err
	}
	e.notify("move")
	return p, nil
}

// SetPosition feeds a sensor-reported position into the same movement
// pipeline as Move. Sensor failures never reach the engine; the caller
// reports them and leaves state unchanged.
func (e *Engine) SetPosition(p geo.Point) (geo.Point, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.moveTo(p); err != nil {
		return geo.Point{}, err
	}
	e.notify("position")
	return p, nil
}

func (e *Engine) moveTo(p geo.Point) error {
	e.player.SetPosition(p)
	if err := e.world.Reconcile(p); err != nil {
		return fmt.Errorf("reconcile at %v: %w", p, err)
	}
	return nil
}

// Collect moves the top token of an active cache onto the player's
// inventory. An empty cache reports cache.ErrEmptyCache and changes
// nothing.
func (e *Engine) Collect(cacheKey string) (cache.Token, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.world.ActiveCache(cacheKey)
	if !ok {
		return cache.Token{}, fmt.Errorf("%w: %s", ErrCacheNotActive, cacheKey)
	}
	tok, err := c.Collect()
	if err != nil {
		return cache.Token{}, err
	}
	e.player.Push(tok)
	e.notify("collect")
	return tok, nil
}

// Deposit moves the top inventory token onto an active cache. An empty
// inventory reports player.ErrEmptyInventory and changes nothing.
func (e *Engine) Deposit(cacheKey string) (cache.Token, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.world.ActiveCache(cacheKey)
	if !ok {
		return cache.Token{}, fmt.Errorf("%w: %s", ErrCacheNotActive, cacheKey)
	}
	tok, err := e.player.Pop()
	if err != nil {
		return cache.Token{}, err
	}
	c.Deposit(tok)
	e.notify("deposit")
	return tok, nil
}

// Save persists the full session snapshot: player tokens, position,
// movement history, and the archive with live mutations synced in. The
// active set is never persisted; load rebuilds it by reconciling.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.snapshotLocked()
	if err != nil {
		return err
	}
	if err := e.sessions.Save(ctx, e.playerID, snap); err != nil {
		return fmt.Errorf("save session %s: %w", e.playerID, err)
	}
	return nil
}

func (e *Engine) snapshotLocked() (session.Snapshot, error) {
	archive, err := e.world.ArchiveSnapshot()
	if err != nil {
		return session.Snapshot{}, err
	}
	return session.Snapshot{
		PlayerTokens:    e.player.Tokens(),
		PlayerPosition:  e.player.Position(),
		MovementHistory: e.player.History(),
		ArchivedCaches:  session.ArchiveEntries(archive),
	}, nil
}

// Load restores the persisted session and re-runs reconciliation to
// repopulate the active set. A missing snapshot is reported as restored =
// false, not an error; the session keeps its default initial state.
func (e *Engine) Load(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, ok, err := e.sessions.Get(ctx, e.playerID)
	if err != nil {
		return false, fmt.Errorf("load session %s: %w", e.playerID, err)
	}
	if !ok {
		return false, nil
	}

	e.player.Restore(snap.PlayerTokens, snap.PlayerPosition, snap.MovementHistory)
	e.world.RestoreArchive(session.ArchiveMap(snap.ArchivedCaches))
	if err := e.world.Reconcile(snap.PlayerPosition); err != nil {
		return false, fmt.Errorf("reconcile restored session: %w", err)
	}
	e.notify("load")
	return true, nil
}

// Reset returns the session to its initial state: empty inventory and
// history, origin position, empty world, persisted snapshot removed.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.player.Reset(e.origin)
	e.world.Reset()
	if err := e.sessions.Delete(ctx, e.playerID); err != nil {
		return fmt.Errorf("delete session %s: %w", e.playerID, err)
	}
	if err := e.world.Reconcile(e.origin); err != nil {
		return fmt.Errorf("reconcile after reset: %w", err)
	}
	e.notify("reset")
	return nil
}

func (e *Engine) notify(reason string) {
	if e.notifier == nil {
		return
	}
	caches := e.world.ActiveCaches()
	keys := make([]string, 0, len(caches))
	for _, c := range caches {
		keys = append(keys, c.Key())
	}
	e.notifier.StateChanged(ports.StateEvent{
		Reason:          reason,
		Position:        e.player.Position(),
		ActiveCacheKeys: keys,
		InventoryCount:  e.player.InventorySize(),
	})
}
