// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer is embedded in the order row; lines live in their own table
// keyed by order ID. Amounts are stored as numeric columns with two fraction
// digits, matching the money precision of the domain.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Customer        CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	Lines           []LineDTO       `gorm:"foreignKey:OrderID;references:ID"`
	Status          int             `gorm:"index"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	AppliedDiscount decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryCost    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact block within the
// order table. Orders snapshot their customer; there is no separate
// customer table to join against.
type CustomerDTO struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

// LineDTO represents one snapshotted order line. The position column
// preserves the append order of the lines, which is part of the aggregate's
// state: repeated products are stored as separate rows, never merged.
type LineDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity    int
	LineTotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			OrderID:     aggregate.ID().Bytes(),
			Position:    i,
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			UnitPrice:   line.UnitPrice().Decimal(),
			Quantity:    line.Quantity(),
			LineTotal:   line.Total().Decimal(),
		})
	}

	c := aggregate.Customer()
	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			Name:        c.Name(),
			Email:       c.Email(),
			Address:     c.Address(),
			PhoneNumber: c.PhoneNumber(),
		},
		Lines:           lineDTOs,
		Status:          int(aggregate.Status()),
		Subtotal:        aggregate.Subtotal().Decimal(),
		AppliedDiscount: aggregate.AppliedDiscount().Decimal(),
		DeliveryCost:    aggregate.DeliveryCost().Decimal(),
		Total:           aggregate.Total().Decimal(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its snapshotted lines and
// recorded price breakdown using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(
		dto.Customer.Name,
		dto.Customer.Email,
		dto.Customer.Address,
		dto.Customer.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineFromDTO(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	amounts := make([]kernel.Money, 0, 4)
	for _, raw := range []decimal.Decimal{dto.Subtotal, dto.AppliedDiscount, dto.DeliveryCost, dto.Total} {
		amount, moneyErr := kernel.NewMoney(raw)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amounts = append(amounts, amount)
	}

	return order.RestoreOrder(id, c, lines, order.Status(dto.Status),
		amounts[0], amounts[1], amounts[2], amounts[3])
}

func lineFromDTO(dto LineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(productID, dto.ProductName, unitPrice, dto.Quantity, lineTotal)
}
