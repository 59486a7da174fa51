package order

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/product"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one snapshotted position inside an order: which product was
// bought, how many, at which unit price, and the captured line total.
//
// The unit price and line total are captured when the line is added. Later
// catalog price changes never retroactively alter an existing order; this
// is an invariant of the aggregate.
type Line struct {
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	lineTotal   kernel.Money

	guard guard.ConstructorGuard
}

// NewLine snapshots a product at the requested quantity.
// The line total is captured as unit price times quantity. Quantity must be
// positive.
func NewLine(p *product.Product, quantity int) (Line, error) {
	if err := p.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		productID:   p.ID(),
		productName: p.Name(),
		unitPrice:   p.Price(),
		quantity:    quantity,
		lineTotal:   p.Price().MulInt(quantity),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreLine reconstructs a Line from persistent storage.
// The line total is taken as persisted, not recomputed, preserving the
// snapshot captured at the time the line was added.
func RestoreLine(productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int, lineTotal kernel.Money) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if productName == "" {
		return Line{}, errs.NewValueIsRequiredError("productName")
	}

	return Line{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
		lineTotal:   lineTotal,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line instance was properly constructed.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the identifier of the snapshotted product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the snapshotted product name.
func (l Line) ProductName() string {
	return l.productName
}

// UnitPrice returns the unit price captured when the line was added.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units on this line.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns the captured line total.
func (l Line) Total() kernel.Money {
	return l.lineTotal
}
