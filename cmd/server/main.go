package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	httpadapter "cachequest/internal/adapter/http"
	metricsinmem "cachequest/internal/adapter/metrics/inmemory"
	"cachequest/internal/adapter/notify/hub"
	gormrepo "cachequest/internal/adapter/repo/gorm"
	"cachequest/internal/adapter/repo/memory"
	"cachequest/internal/app/action"
	"cachequest/internal/app/engine"
	"cachequest/internal/app/observe"
	"cachequest/internal/app/ports"
	"cachequest/internal/app/session"
	"cachequest/internal/domain/geo"
	"cachequest/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

const (
	defaultOriginLat = 36.98949379578401
	defaultOriginLng = -122.06277128548504
)

func main() {
	_ = godotenv.Load()

	sessionRepo := mustBuildSessionRepo()
	store := buildWorldStoreFromEnv()
	notifier := hub.New()
	kpiRecorder := metricsinmem.NewRecorder()

	eng, err := engine.New(engine.Config{
		World: store,
		Origin: geo.Point{
			Lat: floatEnv("WORLD_ORIGIN_LAT", defaultOriginLat),
			Lng: floatEnv("WORLD_ORIGIN_LNG", defaultOriginLng),
		},
		PlayerID: strings.TrimSpace(os.Getenv("CACHEQUEST_PLAYER_ID")),
		Sessions: sessionRepo,
		Notifier: notifier,
	})
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}
	if restored, err := eng.Load(context.Background()); err != nil {
		log.Fatalf("restore session: %v", err)
	} else if restored {
		log.Println("restored saved session")
	}

	h := httpadapter.Handler{
		ActionUC:  action.UseCase{Engine: eng, Metrics: kpiRecorder},
		ObserveUC: observe.UseCase{Engine: eng},
		SessionUC: session.UseCase{Engine: eng, Metrics: kpiRecorder},
		KPI:       kpiRecorder,
	}

	wsAddr := envOr("CACHEQUEST_WS_ADDR", ":8081")
	go serveWS(notifier, wsAddr)

	addr := envOr("CACHEQUEST_HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Printf("cachequest server listening on %s (ws on %s)", addr, wsAddr)
	s.Spin()
}

func serveWS(h *hub.Hub, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("websocket listener: %v", err)
	}
}

func mustBuildSessionRepo() ports.SessionRepository {
	dsn := strings.TrimSpace(os.Getenv("CACHEQUEST_DB_DSN"))
	if dsn == "" {
		log.Println("CACHEQUEST_DB_DSN not set, sessions are kept in memory")
		return memory.NewSessionRepo(memory.NewStore())
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if dir := migrationsDir(); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewSessionRepo(db)
}

func migrationsDir() string {
	dir := strings.TrimSpace(os.Getenv("CACHEQUEST_MIGRATIONS_DIR"))
	if dir == "" {
		dir = "./migrations"
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

func buildWorldStoreFromEnv() *world.Store {
	gridCfg := geo.DefaultGridConfig()
	gridCfg.TileWidth = floatEnv("WORLD_TILE_WIDTH", gridCfg.TileWidth)
	gridCfg.NeighborhoodRadius = intEnv("WORLD_NEIGHBORHOOD_RADIUS", gridCfg.NeighborhoodRadius)

	cfg := world.DefaultConfig()
	cfg.Grid = geo.NewGrid(gridCfg)
	cfg.SpawnProbability = floatEnv("WORLD_SPAWN_PROBABILITY", cfg.SpawnProbability)
	return world.NewStore(cfg)
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
