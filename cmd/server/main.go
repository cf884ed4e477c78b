package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
	"travel-planner-service/internal/adapters/cache"
	"travel-planner-service/internal/adapters/generation"
	"travel-planner-service/internal/adapters/geocode"
	"travel-planner-service/internal/adapters/repositories"
	"travel-planner-service/internal/adapters/sessions"
	"travel-planner-service/internal/api"
	"travel-planner-service/internal/config"
	"travel-planner-service/internal/platform/db"
	"travel-planner-service/internal/platform/logging"
	"travel-planner-service/internal/ports"
	"travel-planner-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Longest a generate action may hold its session lock in Redis. Longer than
// the server write timeout.
const generationLockTTL = 2 * time.Minute

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	closer := logging.Init(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if envErr != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	err := run(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Error("server stopped")
	}
	if closer != nil {
		_ = closer.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// run wires the server and blocks until it stops. Every resource it opens is
// closed before it returns.
func run(ctx context.Context, cfg config.Config) error {
	geocoder, closeDB, err := buildGeocoder(ctx, cfg)
	if err != nil {
		return fmt.Errorf("geocoder setup: %w", err)
	}
	defer closeDB()

	store, locker, closeRedis, err := buildStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("session store setup: %w", err)
	}
	defer closeRedis()

	generator, err := buildGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("generator setup: %w", err)
	}
	if c, ok := generator.(io.Closer); ok {
		defer c.Close()
	}

	planner := services.NewPlanner(geocoder, generator, store)
	if locker != nil {
		planner.Locker = locker
	}
	router := api.NewRouter(planner, cfg.AllowedOrigins)

	logrus.WithFields(logrus.Fields{
		"addr":      ":" + cfg.Port,
		"geocoder":  cfg.GeocoderProvider,
		"cache":     cfg.GeocodeCache,
		"remote":    planner.RemoteEnabled(),
		"generator": cfg.GeneratorProvider,
		"shared":    locker != nil,
	}).Info("Server listening")

	// Write timeout covers a full remote generation plus geocoding.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return nil
}

// buildGeocoder selects the geocoding provider and wraps it with the
// configured cache. The returned func closes the cache database.
func buildGeocoder(ctx context.Context, cfg config.Config) (ports.Geocoder, func(), error) {
	noop := func() {}

	var base ports.Geocoder
	switch cfg.GeocoderProvider {
	case "static":
		return geocode.NewStaticGeocoder(geocode.DemoPlaces), noop, nil
	case "ors":
		g, err := geocode.NewORSGeocoder(cfg.ORSAPIKey)
		if err != nil {
			return nil, noop, err
		}
		base = g
	case "nominatim":
		g, err := geocode.NewNominatimGeocoder(cfg.NominatimURL, cfg.GeocoderAgent)
		if err != nil {
			return nil, noop, err
		}
		base = g
	default:
		return nil, noop, fmt.Errorf("unknown GEOCODER_PROVIDER %q", cfg.GeocoderProvider)
	}

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		gc      ports.GeocodeCache
		err     error
	)
	switch cfg.GeocodeCache {
	case "none", "":
		return base, noop, nil
	case "sqlite":
		conn, err = db.OpenSQLite(cfg.DBPath)
		dialect = repositories.SQLite
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, noop, fmt.Errorf("GEOCODE_CACHE=postgres requires DATABASE_URL")
		}
		conn, err = db.Open(cfg.DatabaseURL)
		dialect = repositories.Postgres
	default:
		return nil, noop, fmt.Errorf("unknown GEOCODE_CACHE %q", cfg.GeocodeCache)
	}
	if err != nil {
		return nil, noop, err
	}
	closeDB := func() { _ = conn.Close() }

	// Initialize schema and warm the cache on startup for local runs.
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		closeDB()
		return nil, noop, err
	}
	if n, err := repositories.SeedGeocodeCache(ctx, conn, dialect, cfg.SeedPath); err != nil {
		logrus.WithError(err).WithField("path", cfg.SeedPath).Warn("geocode cache seed skipped")
	} else {
		logrus.WithField("places", n).Info("geocode cache seeded")
	}

	if dialect == repositories.Postgres {
		gc = cache.NewSQLGeocodeCache(conn)
	} else {
		gc = cache.NewSqliteGeocodeCache(conn)
	}

	cached, err := geocode.NewCachedGeocoder(base, gc)
	if err != nil {
		closeDB()
		return nil, noop, err
	}
	return cached, closeDB, nil
}

// buildStore uses Redis when REDIS_URL is set and process memory otherwise.
// With Redis, sessions are also locked in Redis so instances sharing it do not
// run overlapping generate actions; the locker is nil otherwise.
func buildStore(ctx context.Context, cfg config.Config) (ports.ResultStore, *sessions.RedisLocker, func(), error) {
	noop := func() {}
	if cfg.RedisURL == "" {
		return sessions.NewMemoryResultStore(cfg.SessionTTL), nil, noop, nil
	}

	rdb, err := sessions.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, noop, err
	}
	closeRedis := func() { _ = rdb.Close() }

	store, err := sessions.NewRedisResultStore(rdb, cfg.SessionTTL)
	if err != nil {
		closeRedis()
		return nil, nil, noop, err
	}
	locker, err := sessions.NewRedisLocker(rdb, generationLockTTL)
	if err != nil {
		closeRedis()
		return nil, nil, noop, err
	}
	return store, locker, closeRedis, nil
}

// buildGenerator returns nil when the remote path is not configured, which
// makes every request fall back to local synthesis.
func buildGenerator(ctx context.Context, cfg config.Config) (ports.ItineraryGenerator, error) {
	if !cfg.RemoteGenerationEnabled() {
		return nil, nil
	}

	switch cfg.GeneratorProvider {
	case "openai":
		return generation.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	case "gemini":
		return generation.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return generation.NewHuggingFaceGenerator(cfg.HFAPIURL, cfg.HFAPIKey)
	}
}
