package ports

import "cachequest/internal/domain/geo"

// StateEvent is pushed to rendering subscribers after every engine
// mutation. It carries just enough for a renderer to decide what to
// redraw; the full world view comes from the observe endpoint.
type StateEvent struct {
	Reason          string    `json:"reason"`
	Position        geo.Point `json:"position"`
	ActiveCacheKeys []string  `json:"active_cache_keys"`
	InventoryCount  int       `json:"inventory_count"`
}

// StateNotifier fans state-change events out to the rendering
// collaborator. Implementations must not block the engine.
type StateNotifier interface {
	StateChanged(event StateEvent)
}
