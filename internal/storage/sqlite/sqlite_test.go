package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fromagerie/cheesery/internal/models"
	"github.com/fromagerie/cheesery/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "cheesery-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateCheese assigns ID and timestamps", func(t *testing.T) {
		cheese := &models.Cheese{Name: "Cheddar", Price: 3, IsBestSeller: true}

		if err := store.CreateCheese(ctx, cheese); err != nil {
			t.Fatalf("CreateCheese failed: %v", err)
		}

		if cheese.ID == 0 {
			t.Error("Expected cheese ID to be assigned")
		}
		if cheese.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if cheese.UpdatedAt == 0 {
			t.Error("Expected UpdatedAt to be set")
		}
	})

	t.Run("GetCheese retrieves a stored record", func(t *testing.T) {
		original := &models.Cheese{Name: "Brie", Price: 5.5}
		if err := store.CreateCheese(ctx, original); err != nil {
			t.Fatalf("CreateCheese failed: %v", err)
		}

		retrieved, err := store.GetCheese(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetCheese failed: %v", err)
		}

		if retrieved.ID != original.ID {
			t.Errorf("Expected ID %d, got %d", original.ID, retrieved.ID)
		}
		if retrieved.Name != "Brie" {
			t.Errorf("Expected name Brie, got %s", retrieved.Name)
		}
		if retrieved.Price != 5.5 {
			t.Errorf("Expected price 5.5, got %v", retrieved.Price)
		}
		if retrieved.IsBestSeller {
			t.Error("Expected IsBestSeller to be false")
		}
		if retrieved.CreatedAt != original.CreatedAt {
			t.Errorf("Expected CreatedAt %d, got %d", original.CreatedAt, retrieved.CreatedAt)
		}
	})

	t.Run("GetCheese returns ErrNotFound for absent id", func(t *testing.T) {
		_, err := store.GetCheese(ctx, 999999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Expected storage.ErrNotFound, got %v", err)
		}
	})

	t.Run("ListCheeses preserves insertion order", func(t *testing.T) {
		cheeses, err := store.ListCheeses(ctx)
		if err != nil {
			t.Fatalf("ListCheeses failed: %v", err)
		}

		if len(cheeses) != 2 {
			t.Fatalf("Expected 2 cheeses, got %d", len(cheeses))
		}
		if cheeses[0].Name != "Cheddar" || cheeses[1].Name != "Brie" {
			t.Errorf("Expected [Cheddar Brie], got [%s %s]", cheeses[0].Name, cheeses[1].Name)
		}
		if cheeses[0].ID >= cheeses[1].ID {
			t.Errorf("Expected ascending ids, got %d then %d", cheeses[0].ID, cheeses[1].ID)
		}
	})
}

func TestListCheesesEmptyStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "cheesery-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	store, err := New(filepath.Join(tempDir, "empty.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	cheeses, err := store.ListCheeses(context.Background())
	if err != nil {
		t.Fatalf("ListCheeses failed: %v", err)
	}
	if len(cheeses) != 0 {
		t.Errorf("Expected no cheeses, got %d", len(cheeses))
	}
}
