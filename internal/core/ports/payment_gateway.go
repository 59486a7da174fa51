package ports

import (
	"context"

	"checkout/internal/core/domain/model/kernel"
)

// PaymentGateway charges the customer for an order's total.
//
// Charge returns whether the payment was accepted. A decline is a normal
// business outcome, not an error: (false, nil) means the processor answered
// and said no. The error return is reserved for infrastructure failures
// where no answer was obtained.
type PaymentGateway interface {
	Charge(ctx context.Context, amount kernel.Money, details map[string]string) (bool, error)
}
