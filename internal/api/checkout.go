package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// CheckoutItem is one ordered product line in a checkout request.
type CheckoutItem struct {
	ProductID any     `json:"productID"`
	Quantity  int     `json:"quantity"`
	PriceEach float64 `json:"priceEach"`
}

// CheckoutRequest is the payload of POST /order/checkout. The
// backend creates the order, its line items and, for online
// payment methods, the payment row in one transaction.
type CheckoutRequest struct {
	CustomerID    any            `json:"customerID"`
	StaffID       int            `json:"staffID"`
	PaymentMethod string         `json:"paymentMethod"`
	Products      []CheckoutItem `json:"products"`
	PickupMethod  string         `json:"pickupMethod"`
	OrderStatus   string         `json:"orderStatus"`
	PaymentStatus string         `json:"paymentStatus"`
	ShippedStatus string         `json:"shippedStatus"`
	ShippedDate   *string        `json:"shippedDate"`
}

// CheckoutResult is the created order summary.
type CheckoutResult struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderID"`
}

// Checkout submits one checkout request. On failure the caller
// must leave the cart untouched so the operator can retry.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest, token string) (CheckoutResult, error) {
	data, err := c.do(ctx, http.MethodPost, "/order/checkout", token, req)
	if err != nil {
		return CheckoutResult{}, err
	}
	var res CheckoutResult
	if err := json.Unmarshal(data, &res); err != nil {
		return CheckoutResult{}, err
	}
	return res, nil
}
