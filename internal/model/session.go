package model

// IdentityKind distinguishes the two kinds of authenticated
// principals the suite knows about. The storefront logs in
// customers, the console logs in staff.
type IdentityKind string

const (
	KindCustomer IdentityKind = "customer"
	KindStaff    IdentityKind = "staff"
)

// Identity is the authenticated principal cached by a session. The
// backend performs the actual authentication; this is merely its
// result. Record holds the customer or staff row the login
// endpoint returned, Token an optional bearer token for backend
// calls.
type Identity struct {
	Kind   IdentityKind `json:"kind"`
	Record Record       `json:"record"`
	Token  string       `json:"token,omitempty"`
}

// Key returns the principal's primary key (customerID or staffID)
// as a string, or "" when the login record carried none.
func (id *Identity) Key() string {
	if id == nil {
		return ""
	}
	switch id.Kind {
	case KindCustomer:
		return id.Record.String("customerID")
	case KindStaff:
		return id.Record.String("staffID")
	}
	return ""
}

// Position returns the staff classification used to gate console
// actions. Customers have no position.
func (id *Identity) Position() string {
	if id == nil || id.Kind != KindStaff {
		return ""
	}
	return id.Record.String("position")
}

// CartLine is one entry of the storefront cart: a product record
// plus a quantity of at least 1. Lines are keyed by the product's
// primary key; adding an already-present product increments the
// existing line instead of duplicating it.
type CartLine struct {
	Product  Record `json:"product"`
	Quantity int    `json:"quantity"`
}

// ProductKey returns the line's product identifier as a string.
func (l CartLine) ProductKey() string {
	return l.Product.String("productID")
}

// PriceEach returns the line's unit price. Product listings carry
// priceEach as a number but tolerate string payloads.
func (l CartLine) PriceEach() float64 {
	if f, ok := l.Product.Number("priceEach"); ok {
		return f
	}
	return 0
}

// Subtotal is quantity times unit price.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.PriceEach()
}

// Session is the one piece of state shared across views: the
// authenticated identity plus, for the storefront, the cart.
// Exactly one session exists per browser tab; it is mutated only
// through the session manager so persisted and in-memory state
// cannot diverge.
type Session struct {
	ID       string
	Identity *Identity
	Cart     []CartLine
}

// IsAuthenticated reports whether the session carries an identity.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Identity != nil
}
