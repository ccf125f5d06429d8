package models

// Cheese is a single catalog record.
type Cheese struct {
	// ID is the unique identifier, assigned by the store on creation.
	// Immutable once assigned.
	ID int64

	// Name is the display label (e.g., "Cheddar").
	Name string

	// Price is the currency amount. Integral prices are common and are
	// rendered without a decimal point in derived text.
	Price float64

	// IsBestSeller flags the cheese for storefront promotion.
	IsBestSeller bool

	// CreatedAt is the Unix timestamp when the record was created.
	// Store-managed; never part of the external representation.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last modification.
	// Store-managed; never part of the external representation.
	UpdatedAt int64
}
