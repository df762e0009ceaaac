package httpadapter

import (
	"encoding/json"
	"testing"

	"cachequest/internal/app/action"
	"cachequest/internal/app/engine"
	"cachequest/internal/app/observe"
	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

// The HTTP surface speaks snake_case; the session wire format owned by
// the domain stays camelCase. This pins both contracts.
func TestActionResponseJSONUsesSnakeCase(t *testing.T) {
	resp := action.Response{
		Result:           action.ResultOK,
		Position:         geo.Point{Lat: 1, Lng: 2},
		Token:            &cache.Token{Key: "i:0j:0$0"},
		CacheKey:         "0,0",
		InventoryCount:   1,
		ActiveCacheCount: 3,
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"result", "position", "token", "cache_key", "inventory_count", "active_cache_count"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %s", key, data)
		}
	}
	pos, _ := m["position"].(map[string]any)
	if _, ok := pos["lat"]; !ok {
		t.Fatalf("position should use lat/lng, got %s", data)
	}
}

func TestObserveResponseJSONUsesSnakeCase(t *testing.T) {
	resp := observe.Response{
		Position:        geo.Point{Lat: 1, Lng: 2},
		Inventory:       []cache.Token{},
		MovementHistory: []geo.Point{{Lat: 1, Lng: 2}},
		ActiveCaches: []engine.CacheView{{
			Key:        "0,0",
			Cell:       geo.Cell{I: 0, J: 0},
			TokenCount: 2,
			TokenKeys:  []string{"i:0j:0$0", "i:0j:0$1"},
		}},
		View: observe.ViewMeta{TileWidth: 1e-4, NeighborhoodRadius: 8},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"position", "inventory", "inventory_count", "movement_history", "active_caches", "view"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %s", key, data)
		}
	}
	caches, _ := m["active_caches"].([]any)
	if len(caches) != 1 {
		t.Fatalf("expected one cache view, got %s", data)
	}
	cv, _ := caches[0].(map[string]any)
	for _, key := range []string{"key", "cell", "bounds", "token_count", "token_keys"} {
		if _, ok := cv[key]; !ok {
			t.Fatalf("missing cache view key %q in %s", key, data)
		}
	}
	view, _ := m["view"].(map[string]any)
	for _, key := range []string{"tile_width", "neighborhood_radius"} {
		if _, ok := view[key]; !ok {
			t.Fatalf("missing view key %q in %s", key, data)
		}
	}
}
