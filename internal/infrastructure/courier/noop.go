// Package courier holds clients for live carrier tracking APIs.
package courier

import (
	"context"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// Noop is the courier client used until carrier API credentials are in place.
// Every shipment is answered from the internal store.
type Noop struct{}

// Track always reports domain.ErrNoCourierData.
func (Noop) Track(context.Context, string) (*domain.ShipmentRecord, error) {
	return nil, domain.ErrNoCourierData
}
