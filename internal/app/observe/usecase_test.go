package observe

import (
	"context"
	"strings"
	"testing"

	"cachequest/internal/app/engine"
	"cachequest/internal/domain/geo"
	"cachequest/internal/domain/session"
	"cachequest/internal/domain/world"
)

type noopSessionRepo struct{}

func (noopSessionRepo) Get(context.Context, string) (session.Snapshot, bool, error) {
	return session.Snapshot{}, false, nil
}
func (noopSessionRepo) Save(context.Context, string, session.Snapshot) error { return nil }
func (noopSessionRepo) Delete(context.Context, string) error                 { return nil }

func TestExecute_ProjectsEngineView(t *testing.T) {
	store := world.NewStore(world.Config{
		Grid: geo.NewGrid(geo.GridConfig{TileWidth: 1e-4, NeighborhoodRadius: 1}),
		Generator: func(seed string) float64 {
			if strings.HasSuffix(seed, ",initialValue") {
				return 0.02
			}
			if seed == "0,0" {
				return 0.0
			}
			return 0.99
		},
		SpawnProbability: 0.1,
	})
	e, err := engine.New(engine.Config{World: store, Sessions: noopSessionRepo{}})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if _, err := e.Collect("0,0"); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	resp, err := UseCase{Engine: e}.Execute(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.InventoryCount != 1 || len(resp.Inventory) != 1 {
		t.Fatalf("inventory = %d/%d, want 1", resp.InventoryCount, len(resp.Inventory))
	}
	if len(resp.ActiveCaches) != 1 {
		t.Fatalf("active caches = %d, want 1", len(resp.ActiveCaches))
	}
	cv := resp.ActiveCaches[0]
	if cv.Key != "0,0" || cv.TokenCount != 1 {
		t.Fatalf("cache view = %+v, want key 0,0 with one token left", cv)
	}
	if cv.Bounds.MaxLat != 1e-4 || cv.Bounds.MaxLng != 1e-4 {
		t.Fatalf("cache bounds = %+v", cv.Bounds)
	}
	if resp.View.TileWidth != 1e-4 || resp.View.NeighborhoodRadius != 1 {
		t.Fatalf("view meta = %+v", resp.View)
	}
	if len(resp.MovementHistory) != 1 {
		t.Fatalf("movement history = %v, want just the origin", resp.MovementHistory)
	}
}
