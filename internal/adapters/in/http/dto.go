package http

import (
	"github.com/google/uuid"
)

// Error is the uniform error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProduct is the request body for registering a catalog entry.
// Price is a decimal string with up to two fraction digits, e.g. "85.00".
type NewProduct struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         string `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
}

// Product is one catalog entry in responses.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         string    `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	Customer Customer          `json:"customer"`
	Items    []OrderItem       `json:"items"`
	Discount *Discount         `json:"discount,omitempty"`
	Delivery Delivery          `json:"delivery"`
	Payment  map[string]string `json:"payment,omitempty"`
}

// Customer carries the buyer's contact block.
type Customer struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// OrderItem requests a quantity of one catalog entry. Duplicate product IDs
// are merged by the cart before the order is built.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Discount selects a discount policy. Type is one of "none", "percentage",
// or "fixed"; Value is a decimal string interpreted per type (a percent for
// "percentage", an amount for "fixed") and ignored for "none".
type Discount struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// Delivery selects a delivery policy. Method is one of "pickup", "courier",
// or "postal". Weight is the total package weight in kilograms.
type Delivery struct {
	Method string  `json:"method"`
	Weight float64 `json:"weight,omitempty"`
}

// Order is the placement response: the order's identity, its status after
// the payment attempt, and the recorded price breakdown.
type Order struct {
	ID              uuid.UUID `json:"id"`
	Status          string    `json:"status"`
	Subtotal        string    `json:"subtotal"`
	AppliedDiscount string    `json:"appliedDiscount"`
	DeliveryCost    string    `json:"deliveryCost"`
	Total           string    `json:"total"`
}

// PendingOrder is one row of the pending orders read model.
type PendingOrder struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	Total        string    `json:"total"`
}
