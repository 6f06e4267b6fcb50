// internal/domain/cart/entity.go
package cart

import (
	"math"

	"sprout/internal/domain/catalog"
)

// Line is one entry in the cart: a product snapshot plus a quantity.
//
// Product is a value copy taken at add time. Later catalog changes
// (price, name) do not reach lines already in the cart; the snapshot
// stays until the line is removed and re-added.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-memory cart state for one UI session.
//
//   - line identity is the product id; at most one line per id
//   - insertion-ordered: new products append, updates keep position
//   - quantity is never observable below 1; any mutation that would
//     push it under 1 removes the line instead
//
// All mutations are total functions: there are no error conditions,
// out-of-range input is absorbed by policy (qty < 1 -> removal).
// Cart itself is not safe for concurrent use; the owning store
// serializes access.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{lines: []Line{}}
}

// Add increments the quantity for product's id by 1, or appends a new
// line with quantity 1. The stored snapshot of an existing line is NOT
// refreshed even when the catalog entry changed since the first add.
func (c *Cart) Add(p catalog.Product) {
	idx := c.indexOf(p.ID)
	if idx >= 0 {
		c.lines[idx].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the line matching productID. Absent id is a no-op.
func (c *Cart) Remove(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	// preserve order
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// SetQuantity sets the matching line's quantity to qty exactly
// (absolute set, not a delta). qty < 1 behaves exactly like Remove;
// quantities are never clamped to zero-but-present. Absent id is a
// no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.lines[idx].Quantity = qty
}

// Clear resets the cart to the empty sequence unconditionally.
func (c *Cart) Clear() {
	c.lines = []Line{}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total recomputes the cart total from current state on every call
// (never cached, so it can never go stale). A missing or non-numeric
// price counts as 0.
func (c *Cart) Total() float64 {
	var total float64
	for _, ln := range c.lines {
		price := ln.Product.Price
		if math.IsNaN(price) || math.IsInf(price, 0) {
			price = 0
		}
		total += price * float64(ln.Quantity)
	}
	return total
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
