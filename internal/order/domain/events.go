package domain

// OrderCreated is the event written to the outbox when an order is persisted.
type OrderCreated struct {
	OrderID    string     `json:"order_id"`
	CustomerID string     `json:"customer_id"`
	TotalCents int64      `json:"total_cents"`
	Items      []LineItem `json:"items"`
}
