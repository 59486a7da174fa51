package order

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/delivery"
	"checkout/internal/core/domain/model/discount"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/product"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDiscountStrategyIsRequired is returned when attaching a nil
	// discount policy. An order keeps its no-op default instead.
	ErrDiscountStrategyIsRequired = errs.NewValueIsRequiredError("discount strategy")

	// ErrDeliveryStrategyIsRequired is the configuration failure of the
	// pricing engine: CalculateTotal was invoked with no delivery policy
	// attached. The caller must attach one and retry; it is the only hard
	// precondition in the engine.
	ErrDeliveryStrategyIsRequired = errs.NewValueIsRequiredError("delivery strategy must be set before calculating total")
)

// Order is the aggregate root of the checkout: it owns the snapshotted
// lines, applies exactly one discount policy and exactly one delivery
// policy, computes the price breakdown in a fixed sequence, and carries the
// payment status advanced by the placement workflow.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a constructed customer
//   - Lines are append-only snapshots; repeated products are never merged
//   - The discount policy defaults to no-op; the delivery policy has no
//     default and must be attached before CalculateTotal
//   - Until CalculateTotal has run, all derived amounts are zero and no
//     delivery quote exists; afterwards
//     total == (subtotal - applied discount) + delivery cost
//   - Status transitions follow the rules defined on Status
//
// An order is exclusively owned by the workflow invocation that created it;
// it is not safe for concurrent use.
type Order struct {
	id       kernel.UUID
	customer *customer.Customer
	lines    []Line
	status   Status

	discountStrategy discount.Strategy
	deliveryStrategy delivery.Strategy

	subtotal        kernel.Money
	appliedDiscount kernel.Money
	deliveryCost    kernel.Money
	total           kernel.Money
	deliveryQuote   *delivery.Quote

	guard guard.ConstructorGuard
}

// NewOrder creates an empty order for a customer.
// The order starts Pending with no lines, the no-op discount policy, and no
// delivery policy.
//
// Parameters:
//   - id: unique identifier for the order (must be valid)
//   - c: the customer placing the order (must be constructed; read-only)
//
// Returns the created order, or an aggregated validation error.
func NewOrder(id kernel.UUID, c *customer.Customer) (*Order, error) {
	order := &Order{
		status:           Pending,
		lines:            make([]Line, 0),
		discountStrategy: discount.NewNoDiscount(),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(c),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Policies are not persisted: a restored order is post-placement, so its
// recorded breakdown is authoritative and only status transitions remain
// meaningful on it. The no-op discount policy is attached so the aggregate
// stays internally consistent.
func RestoreOrder(
	id kernel.UUID,
	c *customer.Customer,
	lines []Line,
	status Status,
	subtotal, appliedDiscount, deliveryCost, total kernel.Money,
) (*Order, error) {
	order := &Order{
		discountStrategy: discount.NewNoDiscount(),
		subtotal:         subtotal,
		appliedDiscount:  appliedDiscount,
		deliveryCost:     deliveryCost,
		total:            total,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(c),
		order.setStatus(status),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the order's snapshotted lines in the order they were added.
// The returned slice is a copy.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AddLine appends a snapshotted line for the product at the given quantity.
//
// Repeated calls for the same product produce separate lines, never a
// merged one: merging is the cart's job before the order exists, and the
// order preserves exactly the positions it was given. May be called
// multiple times before the total is calculated.
func (o *Order) AddLine(p *product.Product, quantity int) error {
	line, err := NewLine(p, quantity)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	return nil
}

// SetDiscountStrategy replaces the current discount policy; the last write
// wins. The order keeps its no-op default if this is never called.
func (o *Order) SetDiscountStrategy(strategy discount.Strategy) error {
	if strategy == nil {
		return ErrDiscountStrategyIsRequired
	}

	o.discountStrategy = strategy
	return nil
}

// SetDeliveryStrategy replaces the current delivery policy; the last write
// wins. There is no default: until a policy is attached, CalculateTotal
// fails with ErrDeliveryStrategyIsRequired.
func (o *Order) SetDeliveryStrategy(strategy delivery.Strategy) error {
	if strategy == nil {
		return ErrDeliveryStrategyIsRequired
	}

	o.deliveryStrategy = strategy
	return nil
}

// CalculateSubtotal sums all line totals and records the result as the
// order's subtotal. Idempotent and always consistent with the current
// lines.
func (o *Order) CalculateSubtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Total())
	}

	o.subtotal = subtotal
	return subtotal
}

// CalculateTotal computes the final payable amount in a fixed sequence:
//
//  1. recompute the subtotal from the current lines
//  2. apply the discount policy to it
//  3. fail with ErrDeliveryStrategyIsRequired if no delivery policy is attached
//  4. price the delivery for the customer's address and the given weight
//  5. estimate the delivery and overwrite the quote's provisional cost with
//     the priced one, so the displayed quote and the charged amount never
//     disagree
//  6. record and return total = (subtotal - discount) + delivery cost
//
// Each call recomputes from the current lines and policies, so the result
// reflects whatever state the order is in at call time.
func (o *Order) CalculateTotal(totalWeight float64) (kernel.Money, error) {
	subtotal := o.CalculateSubtotal()

	o.appliedDiscount = o.discountStrategy.Apply(subtotal)

	if o.deliveryStrategy == nil {
		return kernel.ZeroMoney(), ErrDeliveryStrategyIsRequired
	}

	afterDiscount, err := subtotal.Sub(o.appliedDiscount)
	if err != nil {
		return kernel.ZeroMoney(), errs.NewValueIsInvalidErrorWithCause("appliedDiscount",
			fmt.Errorf("discount %s exceeds subtotal %s", o.appliedDiscount, subtotal))
	}

	o.deliveryCost = o.deliveryStrategy.Cost(o.customer.Address(), totalWeight)

	quote := o.deliveryStrategy.Estimate(o.customer.Address())
	quote.Cost = o.deliveryCost
	o.deliveryQuote = &quote

	o.total = afterDiscount.Add(o.deliveryCost)
	return o.total, nil
}

// Subtotal returns the recorded sum of line totals.
// Zero until CalculateSubtotal or CalculateTotal has run.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// AppliedDiscount returns the recorded absolute discount amount.
// Zero until CalculateTotal has run.
func (o *Order) AppliedDiscount() kernel.Money {
	return o.appliedDiscount
}

// DeliveryCost returns the recorded delivery cost.
// Zero until CalculateTotal has run.
func (o *Order) DeliveryCost() kernel.Money {
	return o.deliveryCost
}

// Total returns the recorded final payable amount.
// Zero until CalculateTotal has run.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryQuote returns the reconciled delivery quote, or nil until
// CalculateTotal has run. Its cost always equals DeliveryCost.
func (o *Order) DeliveryQuote() *delivery.Quote {
	return o.deliveryQuote
}

// MarkPaid advances the order to Paid.
// Fired by the placement workflow on an accepted payment; fails unless the
// order is Pending. On a declined payment nothing is called and the order
// simply stays Pending.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkShipped advances the order to Shipped.
// Driven by fulfillment workflows after placement; fails unless the order
// is Paid.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered advances the order to Delivered.
// Fails unless the order is Shipped.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Summary renders the order's identity, customer, status, and the recorded
// price breakdown with two fraction digits. Read-only.
func (o *Order) Summary() string {
	return fmt.Sprintf("Order ID: %s\n"+
		"  Customer: %s\n"+
		"  Status: %s\n"+
		"  Items subtotal: %s\n"+
		"  Discount: %s\n"+
		"  Delivery cost: %s\n"+
		"  Total: %s",
		o.id.Short(), o.customer.Name(), o.status,
		o.subtotal, o.appliedDiscount, o.deliveryCost, o.total)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []Line) error {
	restored := make([]Line, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		restored = append(restored, line)
	}
	o.lines = restored
	return nil
}
