package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var (
	ErrShipPaidOrdersCommandIsNotConstructed = errors.New(
		"ShipPaidOrdersCommand must be created via NewShipPaidOrdersCommand constructor",
	)
)

// ShipPaidOrdersCommand triggers the handover of all paid orders to
// fulfillment. This batch operation advances every Paid order to Shipped.
//
// Example:
//
//	cmd := NewShipPaidOrdersCommand()
//	handler := NewShipPaidOrdersCommandHandler(uowFactory)
//
//	// Run periodically by the fulfillment scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Fulfillment sweep failed: %v", err)
//	}
type ShipPaidOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewShipPaidOrdersCommand creates a command to ship all paid orders.
// This is a parameterless command that processes the whole paid backlog.
func NewShipPaidOrdersCommand() ShipPaidOrdersCommand {
	command := ShipPaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipPaidOrdersCommandIsNotConstructed if validation fails.
func (c *ShipPaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrShipPaidOrdersCommandIsNotConstructed)
}
