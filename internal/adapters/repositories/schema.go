package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Initialize the geocode cache schema for the given dialect.
func InitSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var coordType string
	switch dialect {
	case SQLite:
		coordType = "REAL"
	case Postgres:
		coordType = "DOUBLE PRECISION"
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGeocodeCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS geocode_cache (
        place TEXT PRIMARY KEY,
        lat %[1]s NOT NULL,
        lon %[1]s NOT NULL
    );
	`, coordType)

	statements := []string{
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	Place string  `json:"place"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Populate the geocode cache from a JSON file of known places, so common
// destinations resolve without calling the geocoding service.
func SeedGeocodeCache(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed places: parse json: %w", err)
	}

	rows := make([]PlaceSeed, 0, len(data))
	for i, item := range data {
		place := strings.Join(strings.Fields(item.Place), " ")
		if place == "" {
			return 0, fmt.Errorf("seed places: item at index %d: place cannot be empty", i+1)
		}
		if math.Abs(item.Lat) > 90 || math.Abs(item.Lon) > 180 {
			return 0, fmt.Errorf("seed places: item %q: coordinates out of range", place)
		}
		rows = append(rows, PlaceSeed{Place: place, Lat: item.Lat, Lon: item.Lon})
	}

	var query string
	switch dialect {
	case SQLite:
		query = `INSERT OR REPLACE INTO geocode_cache (place, lat, lon) VALUES (?, ?, ?);`
	case Postgres:
		query = `
		INSERT INTO geocode_cache (place, lat, lon) VALUES ($1, $2, $3)
		ON CONFLICT (place) DO UPDATE SET lat = EXCLUDED.lat, lon = EXCLUDED.lon;
		`
	default:
		return 0, fmt.Errorf("seed places: unsupported dialect %q", dialect)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.ExecContext(ctx, p.Place, p.Lat, p.Lon); err != nil {
			return 0, fmt.Errorf("seed places: insert place=%q: %w", p.Place, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed places: commit tx: %w", err)
	}

	return len(rows), nil
}
