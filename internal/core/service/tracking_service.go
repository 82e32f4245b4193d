package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/meridian-cargo/website/internal/core/domain"
	"github.com/meridian-cargo/website/internal/core/ports"
)

// TrackingService looks shipments up by tracking ID. It holds no state between
// calls; every lookup goes back to the courier seam and the store.
type TrackingService struct {
	store   ports.ShipmentStore
	courier ports.CourierClient
	logger  zerolog.Logger
}

// NewTrackingService wires the lookup. courier may be nil.
func NewTrackingService(store ports.ShipmentStore, courier ports.CourierClient, logger zerolog.Logger) *TrackingService {
	return &TrackingService{store: store, courier: courier, logger: logger}
}

// Track uppercases trackingID, asks the courier seam first and falls back to
// the local store, then normalizes the record.
func (s *TrackingService) Track(ctx context.Context, trackingID string) (*domain.TrackedShipment, error) {
	id := domain.NormalizeTrackingID(trackingID)

	rec := s.fromCourier(ctx, id)
	if rec == nil {
		var err error
		rec, err = s.store.Find(ctx, id)
		if err != nil {
			s.logFailure(id, err)
			return nil, err
		}
	}

	shipment := domain.Normalize(id, *rec)
	s.logger.Debug().Str("tracking_id", id).Str("status", shipment.Status).Msg("shipment resolved")
	return &shipment, nil
}

// fromCourier returns nil whenever the local store should answer instead.
func (s *TrackingService) fromCourier(ctx context.Context, id string) *domain.ShipmentRecord {
	if s.courier == nil {
		return nil
	}
	rec, err := s.courier.Track(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNoCourierData) {
			s.logger.Warn().Err(err).Str("tracking_id", id).Msg("courier lookup failed, using local store")
		}
		return nil
	}
	return rec
}

func (s *TrackingService) logFailure(id string, err error) {
	if errors.Is(err, domain.ErrTrackingNotFound) {
		s.logger.Debug().Str("tracking_id", id).Msg("tracking id not found")
		return
	}
	s.logger.Error().Err(err).Str("tracking_id", id).Msg("shipment store lookup failed")
}
