// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/fromagerie/cheesery/internal/models"
)

// ErrNotFound is returned by GetCheese when no record matches the id.
var ErrNotFound = errors.New("cheese not found")

// Store defines the interface for cheese storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer, and lets the service be tested without
// a real database.
type Store interface {
	// ListCheeses returns all cheeses in store order (ascending id).
	// An empty store yields an empty slice, not an error.
	ListCheeses(ctx context.Context) ([]models.Cheese, error)

	// GetCheese retrieves a cheese by its id.
	// Returns ErrNotFound if no record matches.
	GetCheese(ctx context.Context, id int64) (*models.Cheese, error)

	// CreateCheese persists a new cheese and populates its ID and
	// timestamps. Used by seeding; the HTTP surface is read-only.
	CreateCheese(ctx context.Context, cheese *models.Cheese) error

	// Close releases any resources held by the store.
	Close() error
}
