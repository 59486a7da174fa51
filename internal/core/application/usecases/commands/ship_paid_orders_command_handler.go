package commands

import (
	"context"
)

// ShipPaidOrdersCommandHandler advances the paid backlog to Shipped.
// Retrieves all orders in Paid status and hands each over to fulfillment
// within a single transaction.
type ShipPaidOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipPaidOrdersCommandHandler creates a handler for the fulfillment
// sweep. Requires an OrderUoWFactory for transactional persistence.
func NewShipPaidOrdersCommandHandler(uowFactory OrderUoWFactory) ShipPaidOrdersCommandHandler {
	return ShipPaidOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment sweep command.
// Marks every Paid order as Shipped and persists the transition. All
// updates occur within a single transaction, so a failure leaves the whole
// backlog untouched.
func (h *ShipPaidOrdersCommandHandler) Handle(ctx context.Context, cmd ShipPaidOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllInPaidStatus(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		if err = aggregate.MarkShipped(); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
