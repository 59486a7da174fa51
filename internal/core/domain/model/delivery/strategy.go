// Package delivery provides the pluggable delivery policies of the checkout
// system. Each policy quotes a cost for a destination and weight and
// estimates when the order would arrive. The three variants carry fixed
// economics; there is no live rate lookup.
package delivery

import (
	"time"

	"checkout/internal/core/domain/model/kernel"
)

// now is stubbed in tests to pin arrival estimates.
var now = time.Now

// Strategy is the capability set of a delivery policy.
//
// Cost accepts the total weight even though none of the current variants
// varies its price by it: the parameter is part of the contract so a
// weight-tiered variant can be added without changing any call site.
// Estimate's quote carries a provisional cost; the authoritative amount is
// whatever Cost returns.
type Strategy interface {
	Cost(address string, totalWeight float64) kernel.Money
	Estimate(address string) Quote
}

// Fixed economics of the three delivery variants.
var (
	pickupTransit  = 4 * time.Hour
	courierCost    = kernel.MustMoney("400.00")
	courierTransit = 2 * 24 * time.Hour
	postalCost     = kernel.MustMoney("150.00")
	postalTransit  = 7 * 24 * time.Hour
)

// Pickup is collection by the customer at the store: free, ready in four
// hours.
type Pickup struct{}

// NewPickup creates the pickup policy.
func NewPickup() Pickup {
	return Pickup{}
}

// Cost is always zero for pickup.
func (Pickup) Cost(string, float64) kernel.Money {
	return kernel.ZeroMoney()
}

// Estimate quotes readiness four hours from now.
func (Pickup) Estimate(string) Quote {
	return Quote{
		Cost:             kernel.ZeroMoney(),
		TransitTime:      pickupTransit,
		EstimatedArrival: now().Add(pickupTransit),
	}
}

// Courier is hand delivery to the customer's address: flat 400.00, two
// days in transit.
type Courier struct{}

// NewCourier creates the courier policy.
func NewCourier() Courier {
	return Courier{}
}

// Cost is a flat 400.00 regardless of destination and weight.
func (Courier) Cost(string, float64) kernel.Money {
	return courierCost
}

// Estimate quotes arrival two days from now. The quote's cost is a zero
// placeholder; the order reconciles it with Cost.
func (Courier) Estimate(string) Quote {
	return Quote{
		Cost:             kernel.ZeroMoney(),
		TransitTime:      courierTransit,
		EstimatedArrival: now().Add(courierTransit),
	}
}

// Postal is dispatch through the postal service: flat 150.00, seven days
// in transit.
type Postal struct{}

// NewPostal creates the postal policy.
func NewPostal() Postal {
	return Postal{}
}

// Cost is a flat 150.00 regardless of destination and weight.
func (Postal) Cost(string, float64) kernel.Money {
	return postalCost
}

// Estimate quotes arrival seven days from now. The quote's cost is a zero
// placeholder; the order reconciles it with Cost.
func (Postal) Estimate(string) Quote {
	return Quote{
		Cost:             kernel.ZeroMoney(),
		TransitTime:      postalTransit,
		EstimatedArrival: now().Add(postalTransit),
	}
}
