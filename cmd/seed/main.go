// Command seed loads sample cheeses into the database. The HTTP API is
// read-only, so this is the supported way to populate a local catalog.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fromagerie/cheesery/internal/config"
	"github.com/fromagerie/cheesery/internal/models"
	"github.com/fromagerie/cheesery/internal/storage/sqlite"
	"github.com/fromagerie/cheesery/pkg/logging"
)

var samples = []models.Cheese{
	{Name: "Cheddar", Price: 3, IsBestSeller: true},
	{Name: "Brie", Price: 5.5, IsBestSeller: false},
	{Name: "Gouda", Price: 4.25, IsBestSeller: true},
	{Name: "Manchego", Price: 7, IsBestSeller: false},
	{Name: "Roquefort", Price: 9.99, IsBestSeller: false},
}

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	// Only seed an empty catalog; re-running against a populated database
	// would duplicate names.
	existing, err := store.ListCheeses(ctx)
	if err != nil {
		slog.Error("Failed to inspect catalog", "error", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		slog.Info("Catalog already populated, nothing to do", "count", len(existing))
		return
	}

	for i := range samples {
		if err := store.CreateCheese(ctx, &samples[i]); err != nil {
			slog.Error("Failed to seed cheese", "name", samples[i].Name, "error", err)
			os.Exit(1)
		}
		slog.Info("Seeded cheese", "id", samples[i].ID, "name", samples[i].Name)
	}

	slog.Info("Seeding complete", "count", len(samples), "database", cfg.DBPath)
}
