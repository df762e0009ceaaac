package geo

import (
	"fmt"
	"math"
	"sync"
)

// Cell identifies one grid tile. Cells are interned: the Grid is the only
// place that creates them, and equal (i,j) pairs always yield the same
// *Cell, so callers may compare cells by pointer.
type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Key returns the "i,j" encoding used for cache and archive keys.
func (c *Cell) Key() string {
	return fmt.Sprintf("%d,%d", c.I, c.J)
}

type cellKey struct {
	i int
	j int
}

// Grid canonicalizes continuous coordinates into cells and computes square
// neighborhoods around a point. The interning table is append-only; the
// mutex only guards concurrent first requests for the same cell.
type Grid struct {
	tileWidth float64
	radius    int

	mu    sync.Mutex
	cells map[cellKey]*Cell
}

type GridConfig struct {
	TileWidth          float64
	NeighborhoodRadius int
}

func DefaultGridConfig() GridConfig {
	return GridConfig{
		TileWidth:          1e-4,
		NeighborhoodRadius: 8,
	}
}

func NewGrid(cfg GridConfig) *Grid {
	def := DefaultGridConfig()
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = def.TileWidth
	}
	if cfg.NeighborhoodRadius <= 0 {
		cfg.NeighborhoodRadius = def.NeighborhoodRadius
	}
	return &Grid{
		tileWidth: cfg.TileWidth,
		radius:    cfg.NeighborhoodRadius,
		cells:     make(map[cellKey]*Cell),
	}
}

func (g *Grid) TileWidth() float64 {
	return g.tileWidth
}

func (g *Grid) NeighborhoodRadius() int {
	return g.radius
}

// Canonicalize returns the unique *Cell for (i,j), creating it on first
// request. Repeated calls with equal coordinates return the identical
// pointer.
func (g *Grid) Canonicalize(i, j int) *Cell {
	key := cellKey{i: i, j: j}
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.cells[key]; ok {
		return c
	}
	c := &Cell{I: i, J: j}
	g.cells[key] = c
	return c
}

// CellForPoint maps a continuous coordinate to its cell: floor division by
// the tile width on each axis, latitude to i and longitude to j.
func (g *Grid) CellForPoint(p Point) *Cell {
	i := int(math.Floor(p.Lat / g.tileWidth))
	j := int(math.Floor(p.Lng / g.tileWidth))
	return g.Canonicalize(i, j)
}

// CellBounds returns the continuous rectangle covered by the cell.
func (g *Grid) CellBounds(c *Cell) Bounds {
	return Bounds{
		MinLat: float64(c.I) * g.tileWidth,
		MinLng: float64(c.J) * g.tileWidth,
		MaxLat: float64(c.I+1) * g.tileWidth,
		MaxLng: float64(c.J+1) * g.tileWidth,
	}
}

// Neighborhood returns every cell whose offset from the origin cell lies in
// [-radius, radius) on both axes, row-major over i then j. The range is
// half-open on the positive side; saved worlds were generated with this
// window, so widening it would change which caches exist.
func (g *Grid) Neighborhood(p Point) []*Cell {
	origin := g.CellForPoint(p)
	side := 2 * g.radius
	out := make([]*Cell, 0, side*side)
	for di := -g.radius; di < g.radius; di++ {
		for dj := -g.radius; dj < g.radius; dj++ {
			out = append(out, g.Canonicalize(origin.I+di, origin.J+dj))
		}
	}
	return out
}
