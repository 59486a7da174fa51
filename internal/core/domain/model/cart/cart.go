// Package cart provides the pre-order aggregation of requested quantities.
// A cart groups requested quantities by product with merge-on-duplicate
// semantics: adding the same product twice increases the existing line. This
// deliberately differs from an order, which snapshots every AddLine call as
// its own line without merging.
package cart

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/product"
	"checkout/internal/pkg/errs"
)

// ErrProductIsRequired is returned when adding or removing a nil product.
var ErrProductIsRequired = errs.NewValueIsRequiredError("product")

// Item is one aggregated cart line: a product and the cumulative quantity
// requested for it.
type Item struct {
	Product  *product.Product
	Quantity int
}

// Cart accumulates requested quantities by product before an order is
// materialized. Distinct products keep their insertion order, so the order
// lines produced from a cart are deterministic.
//
// A cart is exclusively owned by the request that builds it; it is not safe
// for concurrent use.
type Cart struct {
	items []Item
	index map[kernel.UUID]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		items: make([]Item, 0),
		index: make(map[kernel.UUID]int),
	}
}

// AddItem adds the requested quantity of a product to the cart.
// If the product is already present its quantity is increased; otherwise a
// new aggregated line is appended. Quantity must be positive.
func (c *Cart) AddItem(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if i, ok := c.index[p.ID()]; ok {
		c.items[i].Quantity += quantity
		return nil
	}

	c.index[p.ID()] = len(c.items)
	c.items = append(c.items, Item{Product: p, Quantity: quantity})
	return nil
}

// RemoveItem deletes a product's aggregated line entirely, whatever its
// quantity. Removing a product that is not in the cart is a no-op.
func (c *Cart) RemoveItem(p *product.Product) error {
	if p == nil {
		return ErrProductIsRequired
	}

	i, ok := c.index[p.ID()]
	if !ok {
		return nil
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, p.ID())
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Product.ID()] = j
	}
	return nil
}

// Items returns the aggregated lines in insertion order.
// The returned slice is a copy; mutating it does not affect the cart.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums unit price times quantity across all aggregated lines.
// It reads live catalog prices and is independent of the per-line subtotal
// an order computes from its snapshotted lines.
func (c *Cart) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Product.Price().MulInt(item.Quantity))
	}
	return subtotal
}

// Validate reports whether the cart is usable. A nil cart is invalid; an
// empty cart is valid and simply prices to zero.
func (c *Cart) Validate() error {
	if c == nil {
		return errors.New("Cart must be created via NewCart constructor")
	}
	return nil
}
