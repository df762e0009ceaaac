package engine

import (
	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

// CacheView is the render-ready projection of one active cache.
type CacheView struct {
	Key        string     `json:"key"`
	Cell       geo.Cell   `json:"cell"`
	Bounds     geo.Bounds `json:"bounds"`
	TokenCount int        `json:"token_count"`
	TokenKeys  []string   `json:"token_keys"`
}

// View is a consistent read of the whole session, taken under the engine
// mutex so a reconciliation pass can never be observed half done.
type View struct {
	Position           geo.Point     `json:"position"`
	Inventory          []cache.Token `json:"inventory"`
	MovementHistory    []geo.Point   `json:"movement_history"`
	ActiveCaches       []CacheView   `json:"active_caches"`
	TileWidth          float64       `json:"tile_width"`
	NeighborhoodRadius int           `json:"neighborhood_radius"`
}

func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	grid := e.world.Grid()
	caches := e.world.ActiveCaches()
	views := make([]CacheView, 0, len(caches))
	for _, c := range caches {
		tokens := c.Tokens()
		keys := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			keys = append(keys, tok.Key)
		}
		views = append(views, CacheView{
			Key:        c.Key(),
			Cell:       *c.Location(),
			Bounds:     grid.CellBounds(c.Location()),
			TokenCount: c.Len(),
			TokenKeys:  keys,
		})
	}
	return View{
		Position:           e.player.Position(),
		Inventory:          e.player.Tokens(),
		MovementHistory:    e.player.History(),
		ActiveCaches:       views,
		TileWidth:          grid.TileWidth(),
		NeighborhoodRadius: grid.NeighborhoodRadius(),
	}
}
