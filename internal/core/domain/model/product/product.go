// Package product provides the catalog entry aggregate for the checkout
// system. A product is an immutable catalog fact: the pricing engine reads
// its unit price when lines are added to a cart or an order, but never
// mutates it. Stock quantity is carried for display; inventory decrement is
// handled outside this core.
package product

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents an entry in the store catalog.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Unit price is non-negative (enforced by kernel.Money)
//   - Stock quantity is non-negative
//   - Can only be created through NewProduct or RestoreProduct
//
// Products are immutable after creation within this core: later catalog
// price changes never retroactively alter existing order lines, which
// snapshot the unit price at the time they are added.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog entry with a fresh identity.
//
// Parameters:
//   - name: human-readable product name (must be non-empty)
//   - description: free-form description (may be empty)
//   - price: non-negative unit price
//   - stockQuantity: units on hand (must be non-negative)
//
// Returns the created product, or an aggregated validation error if any
// parameter is invalid.
func NewProduct(name, description string, price kernel.Money, stockQuantity int) (*Product, error) {
	product := &Product{
		id:          kernel.NewUUID(),
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setName(name),
		product.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage with its
// original identity. The restored product behaves identically to one created
// through NewProduct.
func RestoreProduct(id kernel.UUID, name, description string, price kernel.Money, stockQuantity int) (*Product, error) {
	product := &Product{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StockQuantity returns the units on hand.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// Info renders the product as a single display line.
func (p *Product) Info() string {
	return fmt.Sprintf("Name: %s, description: %s, price: %s, stock: %d",
		p.name, p.description, p.price, p.stockQuantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", quantity))
	}
	p.stockQuantity = quantity
	return nil
}
