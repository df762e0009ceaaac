package observe

import (
	"cachequest/internal/app/engine"
	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

type Request struct{}

// Response is everything the rendering collaborator needs for a full
// redraw: player state, trail, and the active cache projections.
type Response struct {
	Position        geo.Point          `json:"position"`
	Inventory       []cache.Token      `json:"inventory"`
	InventoryCount  int                `json:"inventory_count"`
	MovementHistory []geo.Point        `json:"movement_history"`
	ActiveCaches    []engine.CacheView `json:"active_caches"`
	View            ViewMeta           `json:"view"`
}

type ViewMeta struct {
	TileWidth          float64 `json:"tile_width"`
	NeighborhoodRadius int     `json:"neighborhood_radius"`
}
