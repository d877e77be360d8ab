package cart

import (
	"errors"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/model"
)

// Payment methods the storefront offers at checkout.
var PaymentMethods = []string{"Cash", "BankTransfer", "Card", "Voucher"}

// Orders placed through the storefront are recorded against this
// staff account until the backend assigns a real one.
const checkoutStaffID = 1

var (
	// ErrNoPaymentMethod rejects a checkout without a payment
	// method selection.
	ErrNoPaymentMethod = errors.New("cart: payment method required")
	// ErrEmptyOrder rejects a checkout with no lines.
	ErrEmptyOrder = errors.New("cart: no items to order")
)

// DeriveFulfillment maps the payment method onto pickup method and
// payment status. Cash and card are settled in store, so the order
// ships nowhere and stays unpaid until pickup; every other method
// is an online payment, so the order ships and is already paid.
// This is a fixed business rule, not user-configurable.
func DeriveFulfillment(paymentMethod string) (pickupMethod, paymentStatus string) {
	if paymentMethod == "Cash" || paymentMethod == "Card" {
		return "StorePickup", "Unpaid"
	}
	return "Ship", "Paid"
}

// BuildCheckout assembles the checkout payload for a set of cart
// lines. Quantities follow the lines as given, so callers that let
// the operator order less than the carted quantity pass adjusted
// lines.
func BuildCheckout(customerKey any, lines []model.CartLine, paymentMethod string) (api.CheckoutRequest, error) {
	if paymentMethod == "" {
		return api.CheckoutRequest{}, ErrNoPaymentMethod
	}
	if len(lines) == 0 {
		return api.CheckoutRequest{}, ErrEmptyOrder
	}
	pickup, payStatus := DeriveFulfillment(paymentMethod)
	items := make([]api.CheckoutItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, api.CheckoutItem{
			ProductID: l.Product["productID"],
			Quantity:  l.Quantity,
			PriceEach: l.PriceEach(),
		})
	}
	return api.CheckoutRequest{
		CustomerID:    customerKey,
		StaffID:       checkoutStaffID,
		PaymentMethod: paymentMethod,
		Products:      items,
		PickupMethod:  pickup,
		OrderStatus:   "Confirmed",
		PaymentStatus: payStatus,
		ShippedStatus: "In Process",
		ShippedDate:   nil,
	}, nil
}

// OrderedQuantities maps product key to ordered quantity for a
// line set, the shape Reduce consumes after a checkout succeeds.
func OrderedQuantities(lines []model.CartLine) map[string]int {
	out := make(map[string]int, len(lines))
	for _, l := range lines {
		out[l.ProductKey()] = l.Quantity
	}
	return out
}
