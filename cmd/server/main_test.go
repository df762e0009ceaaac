package main

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("CACHEQUEST_HTTP_ADDR", "")
	if got := envOr("CACHEQUEST_HTTP_ADDR", ":8080"); got != ":8080" {
		t.Fatalf("envOr fallback: got %q", got)
	}
	t.Setenv("CACHEQUEST_HTTP_ADDR", " :9090 ")
	if got := envOr("CACHEQUEST_HTTP_ADDR", ":8080"); got != ":9090" {
		t.Fatalf("envOr trims: got %q", got)
	}
}

func TestIntEnv(t *testing.T) {
	t.Setenv("WORLD_NEIGHBORHOOD_RADIUS", "")
	if got := intEnv("WORLD_NEIGHBORHOOD_RADIUS", 8); got != 8 {
		t.Fatalf("intEnv fallback: got %d", got)
	}
	t.Setenv("WORLD_NEIGHBORHOOD_RADIUS", "12")
	if got := intEnv("WORLD_NEIGHBORHOOD_RADIUS", 8); got != 12 {
		t.Fatalf("intEnv parse: got %d", got)
	}
	t.Setenv("WORLD_NEIGHBORHOOD_RADIUS", "not-a-number")
	if got := intEnv("WORLD_NEIGHBORHOOD_RADIUS", 8); got != 8 {
		t.Fatalf("intEnv bad value falls back: got %d", got)
	}
}

func TestFloatEnv(t *testing.T) {
	t.Setenv("WORLD_SPAWN_PROBABILITY", "")
	if got := floatEnv("WORLD_SPAWN_PROBABILITY", 0.1); got != 0.1 {
		t.Fatalf("floatEnv fallback: got %v", got)
	}
	t.Setenv("WORLD_SPAWN_PROBABILITY", "0.25")
	if got := floatEnv("WORLD_SPAWN_PROBABILITY", 0.1); got != 0.25 {
		t.Fatalf("floatEnv parse: got %v", got)
	}
	t.Setenv("WORLD_SPAWN_PROBABILITY", "nope")
	if got := floatEnv("WORLD_SPAWN_PROBABILITY", 0.1); got != 0.1 {
		t.Fatalf("floatEnv bad value falls back: got %v", got)
	}
}

func TestBuildWorldStoreFromEnv(t *testing.T) {
	t.Setenv("WORLD_TILE_WIDTH", "0.001")
	t.Setenv("WORLD_NEIGHBORHOOD_RADIUS", "4")
	t.Setenv("WORLD_SPAWN_PROBABILITY", "0.5")

	store := buildWorldStoreFromEnv()
	if got := store.Grid().TileWidth(); got != 0.001 {
		t.Fatalf("tile width: got %v", got)
	}
	if got := store.Grid().NeighborhoodRadius(); got != 4 {
		t.Fatalf("radius: got %d", got)
	}
}
