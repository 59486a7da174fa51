package delivery

import (
	"fmt"
	"time"

	"checkout/internal/core/domain/model/kernel"
)

// Quote describes how an order would be delivered: what it costs, how long
// transit takes, and when it is estimated to arrive.
//
// The Cost produced by Strategy.Estimate may be a provisional placeholder;
// the authoritative cost comes from Strategy.Cost, and the order overwrites
// the quote's Cost with it when calculating the total so the display object
// and the charged amount never disagree.
type Quote struct {
	Cost             kernel.Money
	TransitTime      time.Duration
	EstimatedArrival time.Time
}

// Summary renders the quote as a single display line. The arrival estimate
// is rendered date-only.
func (q Quote) Summary() string {
	return fmt.Sprintf("Delivery - cost: %s, estimated date: %s",
		q.Cost, q.EstimatedArrival.Format("2006-01-02"))
}
