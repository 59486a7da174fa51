package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrStockIsInvalid        = errors.New("stock quantity must not be negative")
)

// AddProductCommand represents a request to register a product in the
// catalog. The description may be empty; price validity is enforced by the
// Money type it carries.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	description   string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a catalog entry.
// Validates that the name is not empty and the stock is not negative.
func NewAddProductCommand(name, description string, price kernel.Money, stockQuantity int) (AddProductCommand, error) {
	command := AddProductCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setStockQuantity(stockQuantity),
	); err != nil {
		return AddProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// Name returns the product's display name.
func (c AddProductCommand) Name() string {
	return c.name
}

// Description returns the product's description, possibly empty.
func (c AddProductCommand) Description() string {
	return c.description
}

// Price returns the product's unit price.
func (c AddProductCommand) Price() kernel.Money {
	return c.price
}

// StockQuantity returns the initial stock level.
func (c AddProductCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrStockIsInvalid
	}

	c.stockQuantity = stockQuantity
	return nil
}
