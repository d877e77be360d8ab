// Package queue defines message payloads exchanged over the
// message broker.
package queue

// OrderItem is one product line of a placed order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	PriceEach float64 `json:"price_each"`
}

// OrderPlacedEvent is published when a storefront checkout
// succeeds. It carries enough for downstream consumers to log,
// notify or feed analytics without querying the backend.
type OrderPlacedEvent struct {
	OrderID       int64       `json:"order_id"`
	CustomerID    string      `json:"customer_id"`
	PaymentMethod string      `json:"payment_method"`
	PickupMethod  string      `json:"pickup_method"`
	PaymentStatus string      `json:"payment_status"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	PlacedAt      string      `json:"placed_at"`
}
