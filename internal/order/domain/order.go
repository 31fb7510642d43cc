package domain

import "time"

// LineRequest is one requested product/quantity pair as supplied by the
// caller of order creation.
type LineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// LineItem is one priced position inside a persisted order. PriceCents is a
// snapshot of the catalog price at order time; later catalog price changes do
// not affect it.
type LineItem struct {
	ProductID  string `json:"product_id"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

type Order struct {
	ID         string
	CustomerID string
	Items      []LineItem
	TotalCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder builds an unpersisted order for the given customer. The ID stays
// empty until a store assigns one.
func NewOrder(customerID string, items []LineItem) Order {
	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.PriceCents
	}
	now := time.Now().UTC()
	return Order{
		CustomerID: customerID,
		Items:      items,
		TotalCents: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
