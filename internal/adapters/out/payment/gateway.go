// Package payment provides the outbound adapter for charging customers.
// The processor here is a stand-in for a real payment provider: it accepts
// every charge and logs what it did. The port it implements keeps the
// placement workflow honest about declines and transport failures, so a
// real provider can be dropped in without touching the use cases.
package payment

import (
	"context"
	"log/slog"

	"checkout/internal/core/domain/model/kernel"
)

// Processor charges payments under a fixed method label, such as "card" or
// "paypal". Implements ports.PaymentGateway.
type Processor struct {
	method string
	logger *slog.Logger
}

// NewProcessor creates a payment processor for the given method label.
// A nil logger falls back to the default slog logger.
func NewProcessor(method string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		method: method,
		logger: logger,
	}
}

// Method returns the processor's method label.
func (p *Processor) Method() string {
	return p.method
}

// Charge processes a payment for the given amount.
// This implementation accepts every charge and logs the amount and the
// forwarded details. The (false, nil) decline outcome is reserved for real
// providers.
func (p *Processor) Charge(ctx context.Context, amount kernel.Money, details map[string]string) (bool, error) {
	p.logger.InfoContext(ctx, "processing payment",
		"method", p.method,
		"amount", amount.String(),
		"details", details,
	)

	return true, nil
}
