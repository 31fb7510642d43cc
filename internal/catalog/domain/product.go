package domain

import "time"

// Product is a catalog entry. Quantity is the stock available for purchase;
// PriceCents is the unit price in minor currency units.
type Product struct {
	ID         string
	Name       string
	PriceCents int64
	Quantity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewProduct(id, name string, priceCents int64, quantity int) Product {
	now := time.Now().UTC()
	return Product{
		ID:         id,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
