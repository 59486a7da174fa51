package commands

import (
	"context"
	"strconv"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Builds an order from the cart, prices it through the attached policies,
// charges the customer, and persists the result.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, gateway)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), buyer, basket,
//	    nil, delivery.NewPickup(), nil, nil)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Println(placed.Summary())
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// PaymentGateway to charge the computed total.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the order placement command.
//
// The sequence follows the placement workflow: build the order from the
// cart's aggregated lines, attach the pricing policies, compute the total,
// charge the payment, and persist. An accepted charge marks the order Paid;
// a declined one leaves it Pending and is not an error. Pricing failures,
// including a missing delivery policy, abort before any charge is attempted.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer())
	if err != nil {
		return nil, err
	}

	for _, item := range cmd.Cart().Items() {
		if err = aggregate.AddLine(item.Product, item.Quantity); err != nil {
			return nil, err
		}
	}

	if cmd.DiscountStrategy() != nil {
		if err = aggregate.SetDiscountStrategy(cmd.DiscountStrategy()); err != nil {
			return nil, err
		}
	}
	if cmd.DeliveryStrategy() != nil {
		if err = aggregate.SetDeliveryStrategy(cmd.DeliveryStrategy()); err != nil {
			return nil, err
		}
	}

	total, err := aggregate.CalculateTotal(parseWeight(cmd.DeliveryDetails()))
	if err != nil {
		return nil, err
	}

	accepted, err := h.gateway.Charge(ctx, total, cmd.PaymentDetails())
	if err != nil {
		return nil, err
	}
	if accepted {
		if err = aggregate.MarkPaid(); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// parseWeight extracts the package weight from the delivery details.
// A missing or malformed value counts as weightless.
func parseWeight(details map[string]string) float64 {
	raw, ok := details["weight"]
	if !ok {
		return 0
	}

	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil || weight < 0 {
		return 0
	}
	return weight
}
