package ports

import (
	"context"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// ShipmentStore reads shipment records from the backing store.
type ShipmentStore interface {
	// Find returns the record stored under trackingID, which must already be
	// normalized. It fails with domain.ErrStoreUnavailable, domain.ErrStoreCorrupt
	// or domain.ErrTrackingNotFound.
	Find(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error)
}

// CourierClient is the seam for live carrier integrations (DHL, UPS, FedEx).
// Implementations return domain.ErrNoCourierData when they have nothing for an ID.
type CourierClient interface {
	Track(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error)
}
