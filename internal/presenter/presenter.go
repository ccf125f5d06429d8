// Package presenter shapes domain models into their external JSON
// representation. Each endpoint owns an explicit allow-list of output fields;
// anything not named here (timestamps in particular) never reaches a client.
package presenter

import (
	"strconv"

	"github.com/fromagerie/cheesery/internal/models"
)

// ListEntry is the projection returned by the list endpoint.
type ListEntry struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	IsBestSeller bool    `json:"is_best_seller"`
}

// Detail is the projection returned by the get-one endpoint.
// It extends ListEntry with the derived summary field.
type Detail struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	IsBestSeller bool    `json:"is_best_seller"`
	Summary      string  `json:"summary"`
}

// List projects a slice of cheeses into list entries, one per record,
// preserving order. An empty input yields an empty (non-nil) slice so the
// JSON body serializes as [].
func List(cheeses []models.Cheese) []ListEntry {
	entries := make([]ListEntry, 0, len(cheeses))
	for _, c := range cheeses {
		entries = append(entries, ListEntry{
			ID:           c.ID,
			Name:         c.Name,
			Price:        c.Price,
			IsBestSeller: c.IsBestSeller,
		})
	}
	return entries
}

// Show projects a single cheese, including the derived summary.
func Show(c models.Cheese) Detail {
	return Detail{
		ID:           c.ID,
		Name:         c.Name,
		Price:        c.Price,
		IsBestSeller: c.IsBestSeller,
		Summary:      Summary(c),
	}
}

// Summary renders "<name>: $<price>". Prices are formatted with the fewest
// digits that round-trip, so an integral price has no decimal point
// ("Cheddar: $3") and a fractional one keeps its digits ("Brie: $5.5").
func Summary(c models.Cheese) string {
	return c.Name + ": $" + strconv.FormatFloat(c.Price, 'f', -1, 64)
}
