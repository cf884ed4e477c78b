package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"travel-planner-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedGeocodeCache(t *testing.T) {
	ctx := context.Background()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(ctx, conn, SQLite))
	// idempotent
	require.NoError(t, InitSchema(ctx, conn, SQLite))

	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"place": "  Bengaluru,   India ", "lat": 12.9716, "lon": 77.5946},
		{"place": "Paris, France", "lat": 48.8566, "lon": 2.3522}
	]`), 0o644))

	n, err := SeedGeocodeCache(ctx, conn, SQLite, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var lat, lon float64
	err = conn.QueryRowContext(ctx, `SELECT lat, lon FROM geocode_cache WHERE place = ?`, "Bengaluru, India").Scan(&lat, &lon)
	require.NoError(t, err)
	assert.InDelta(t, 12.9716, lat, 1e-9)
	assert.InDelta(t, 77.5946, lon, 1e-9)
}

func TestSeedGeocodeCacheRejectsBadRows(t *testing.T) {
	ctx := context.Background()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, InitSchema(ctx, conn, SQLite))

	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"place": "Mars", "lat": 120, "lon": 0}]`), 0o644))

	_, err = SeedGeocodeCache(ctx, conn, SQLite, path)
	assert.Error(t, err)
}

func TestInitSchemaUnknownDialect(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.Error(t, InitSchema(context.Background(), conn, Dialect("oracle")))
}
