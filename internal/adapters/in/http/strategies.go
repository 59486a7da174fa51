package http

import (
	"fmt"

	"checkout/internal/core/domain/model/delivery"
	"checkout/internal/core/domain/model/discount"
	"checkout/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// parseDiscountStrategy maps the request's discount selector to a domain
// policy. A nil selector and the "none" type both mean no discount.
func parseDiscountStrategy(dto *Discount) (discount.Strategy, error) {
	if dto == nil {
		return nil, nil
	}

	switch dto.Type {
	case "", "none":
		return discount.NewNoDiscount(), nil
	case "percentage":
		percentage, err := decimal.NewFromString(dto.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage value %q: %w", dto.Value, err)
		}
		return discount.NewPercentageDiscount(percentage), nil
	case "fixed":
		amount, err := kernel.MoneyFromString(dto.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid fixed discount value %q: %w", dto.Value, err)
		}
		return discount.NewFixedAmountDiscount(amount), nil
	default:
		return nil, fmt.Errorf("unknown discount type %q", dto.Type)
	}
}

// parseDeliveryStrategy maps the request's delivery method to a domain
// policy.
func parseDeliveryStrategy(method string) (delivery.Strategy, error) {
	switch method {
	case "pickup":
		return delivery.NewPickup(), nil
	case "courier":
		return delivery.NewCourier(), nil
	case "postal":
		return delivery.NewPostal(), nil
	default:
		return nil, fmt.Errorf("unknown delivery method %q", method)
	}
}
