// Package cart implements the storefront's session cart and the
// checkout business rules. All functions are pure over line
// slices; the session manager persists whatever they return.
package cart

import "github.com/minhvo/retail-suite/internal/model"

// Add merges a product into the cart. An already-present product
// increments its existing line instead of duplicating it. qty is
// clamped to at least 1.
func Add(lines []model.CartLine, product model.Record, qty int) []model.CartLine {
	if qty < 1 {
		qty = 1
	}
	key := model.CartLine{Product: product}.ProductKey()
	for i, l := range lines {
		if l.ProductKey() == key {
			lines[i].Quantity += qty
			return lines
		}
	}
	return append(lines, model.CartLine{Product: product, Quantity: qty})
}

// Remove deletes the line for a product key. Removal is always an
// explicit action; quantity adjustment never drops a line.
func Remove(lines []model.CartLine, productKey string) []model.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ProductKey() != productKey {
			out = append(out, l)
		}
	}
	return out
}

// SetQuantity sets a line's quantity, clamped at 1. Decrementing
// below 1 never removes the line.
func SetQuantity(lines []model.CartLine, productKey string, qty int) []model.CartLine {
	if qty < 1 {
		qty = 1
	}
	for i, l := range lines {
		if l.ProductKey() == productKey {
			lines[i].Quantity = qty
			break
		}
	}
	return lines
}

// Find returns the line for a product key, if present.
func Find(lines []model.CartLine, productKey string) (model.CartLine, bool) {
	for _, l := range lines {
		if l.ProductKey() == productKey {
			return l, true
		}
	}
	return model.CartLine{}, false
}

// Total sums quantity times unit price over all lines.
func Total(lines []model.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Subtotal()
	}
	return sum
}

// Reduce subtracts the ordered quantities from the cart after a
// successful checkout. A line ordered in full disappears; a line
// ordered partially keeps the remainder. ordered maps product key
// to ordered quantity.
func Reduce(lines []model.CartLine, ordered map[string]int) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		qty, ok := ordered[l.ProductKey()]
		if !ok {
			out = append(out, l)
			continue
		}
		if qty < l.Quantity {
			l.Quantity -= qty
			out = append(out, l)
		}
		// ordered in full (or more): line is drained
	}
	return out
}
