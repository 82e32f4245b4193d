package ports

import (
	"context"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// TrackingService resolves a caller-supplied tracking ID to a normalized shipment.
type TrackingService interface {
	// Track accepts the ID verbatim (any casing, any characters). On failure the
	// error matches exactly one of domain.ErrStoreUnavailable,
	// domain.ErrStoreCorrupt or domain.ErrTrackingNotFound.
	Track(ctx context.Context, trackingID string) (*domain.TrackedShipment, error)
}
