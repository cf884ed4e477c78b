package main

import (
	"context"
	"database/sql"
	"fmt"
	"travel-planner-service/internal/adapters/repositories"
	"travel-planner-service/internal/config"
	"travel-planner-service/internal/platform/db"
	"travel-planner-service/internal/platform/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// dbtool prepares the shared Postgres geocode cache: it creates the schema
// and loads the seed places.
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Init(logging.Options{Level: cfg.LogLevel})
	if envErr != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("open database")
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, cfg.SeedPath); err != nil {
		logrus.WithError(err).Fatal("dbtool failed")
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	logrus.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn, repositories.Postgres); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logrus.Info("Schema ready.")

	logrus.WithField("path", seedPath).Info("Seeding geocode cache...")
	n, err := repositories.SeedGeocodeCache(ctx, conn, repositories.Postgres, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logrus.WithField("places", n).Info("Seeding complete.")

	return nil
}
