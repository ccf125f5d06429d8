// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/fromagerie/cheesery/internal/models"
	"github.com/fromagerie/cheesery/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateCheese persists a new cheese and populates its ID and timestamps.
func (s *SQLiteStore) CreateCheese(ctx context.Context, cheese *models.Cheese) error {
	now := time.Now().Unix()
	cheese.CreatedAt = now
	cheese.UpdatedAt = now

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO cheeses (name, price, is_best_seller, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		cheese.Name, cheese.Price, cheese.IsBestSeller, cheese.CreatedAt, cheese.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cheese: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	cheese.ID = id

	return nil
}

// ListCheeses returns all cheeses ordered by id, matching insertion order.
func (s *SQLiteStore) ListCheeses(ctx context.Context) ([]models.Cheese, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, is_best_seller, created_at, updated_at FROM cheeses ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cheeses: %w", err)
	}
	defer rows.Close()

	var cheeses []models.Cheese
	for rows.Next() {
		var c models.Cheese
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.IsBestSeller, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cheese: %w", err)
		}
		cheeses = append(cheeses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cheeses: %w", err)
	}

	return cheeses, nil
}

// GetCheese retrieves a cheese by id. Returns storage.ErrNotFound when absent.
func (s *SQLiteStore) GetCheese(ctx context.Context, id int64) (*models.Cheese, error) {
	cheese := &models.Cheese{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, is_best_seller, created_at, updated_at FROM cheeses WHERE id = ?",
		id,
	).Scan(&cheese.ID, &cheese.Name, &cheese.Price, &cheese.IsBestSeller, &cheese.CreatedAt, &cheese.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cheese: %w", err)
	}

	return cheese, nil
}
