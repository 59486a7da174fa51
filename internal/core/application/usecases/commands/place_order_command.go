package commands

import (
	"errors"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/delivery"
	"checkout/internal/core/domain/model/discount"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart must contain at least one item")
)

// PlaceOrderCommand represents a request to turn a shopping cart into a
// priced, charged order. It carries the cart, the customer, the pricing
// policies to attach, and the free-form detail maps forwarded to the
// delivery strategy and the payment processor.
//
// The discount strategy may be nil: the order then keeps its no-op default.
// The delivery strategy may also be nil; pricing will then fail with the
// configuration error, which the handler surfaces before any charge is
// attempted.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, buyer, basket,
//	    discount.NewPercentageDiscount(decimal.NewFromInt(10)),
//	    delivery.NewCourier(),
//	    map[string]string{"weight": "16.0"},
//	    map[string]string{"method": "card"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, gateway)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customer         *customer.Customer
	cart             *cart.Cart
	discountStrategy discount.Strategy
	deliveryStrategy delivery.Strategy
	deliveryDetails  map[string]string
	paymentDetails   map[string]string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from a cart.
// Validates that the order ID is valid, the customer is constructed, and
// the cart is valid and non-empty. The strategies and detail maps are
// accepted as given; nil detail maps are treated as empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	c *customer.Customer,
	basket *cart.Cart,
	discountStrategy discount.Strategy,
	deliveryStrategy delivery.Strategy,
	deliveryDetails map[string]string,
	paymentDetails map[string]string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		discountStrategy: discountStrategy,
		deliveryStrategy: deliveryStrategy,
		deliveryDetails:  deliveryDetails,
		paymentDetails:   paymentDetails,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomer(c),
		command.setCart(basket),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer placing the order.
func (c PlaceOrderCommand) Customer() *customer.Customer {
	return c.customer
}

// Cart returns the shopping cart the order is built from.
func (c PlaceOrderCommand) Cart() *cart.Cart {
	return c.cart
}

// DiscountStrategy returns the discount policy to attach, or nil to keep
// the order's no-op default.
func (c PlaceOrderCommand) DiscountStrategy() discount.Strategy {
	return c.discountStrategy
}

// DeliveryStrategy returns the delivery policy to attach. May be nil;
// pricing then fails with the configuration error.
func (c PlaceOrderCommand) DeliveryStrategy() delivery.Strategy {
	return c.deliveryStrategy
}

// DeliveryDetails returns the free-form delivery parameters, such as the
// package weight.
func (c PlaceOrderCommand) DeliveryDetails() map[string]string {
	return c.deliveryDetails
}

// PaymentDetails returns the free-form payment parameters forwarded to the
// payment processor.
func (c PlaceOrderCommand) PaymentDetails() map[string]string {
	return c.paymentDetails
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(cust *customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}

	c.customer = cust
	return nil
}

func (c *PlaceOrderCommand) setCart(basket *cart.Cart) error {
	if err := basket.Validate(); err != nil {
		return err
	}
	if basket.IsEmpty() {
		return ErrCartIsEmpty
	}

	c.cart = basket
	return nil
}
