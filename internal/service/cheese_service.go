// Package service exposes the cheese catalog over HTTP.
package service

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fromagerie/cheesery/internal/presenter"
	"github.com/fromagerie/cheesery/internal/storage"
)

// CheeseService handles the read-only cheese endpoints.
type CheeseService struct {
	store storage.Store
}

// NewCheeseService creates a CheeseService backed by the given store.
func NewCheeseService(store storage.Store) *CheeseService {
	return &CheeseService{store: store}
}

// Routes registers the cheese endpoints on the router.
func (s *CheeseService) Routes(r *gin.Engine) {
	r.GET("/cheeses", s.List)
	r.GET("/cheeses/:id", s.GetOne)
	r.GET("/healthz", s.Health)
}

// List responds with all cheeses as list projections.
func (s *CheeseService) List(c *gin.Context) {
	cheeses, err := s.store.ListCheeses(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list cheeses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, presenter.List(cheeses))
}

// GetOne responds with the detail projection of one cheese, or a 404 when no
// record matches the id. A non-numeric id cannot match any stored integer id,
// so it receives the same not-found answer.
func (s *CheeseService) GetOne(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cheese not found"})
		return
	}

	cheese, err := s.store.GetCheese(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cheese not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to get cheese", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, presenter.Show(*cheese))
}

// Health reports liveness.
func (s *CheeseService) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
