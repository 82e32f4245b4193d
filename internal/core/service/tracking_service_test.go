package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubStore struct {
	records map[string]*domain.ShipmentRecord
	err     error    // if set, Find returns this error
	lookups []string // keys passed to Find, in order
}

func (s *stubStore) Find(_ context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	s.lookups = append(s.lookups, trackingID)
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.records[trackingID]
	if !ok {
		return nil, domain.ErrTrackingNotFound
	}
	clone := *rec
	return &clone, nil
}

type stubCourier struct {
	rec   *domain.ShipmentRecord
	err   error
	calls int
}

func (c *stubCourier) Track(_ context.Context, _ string) (*domain.ShipmentRecord, error) {
	c.calls++
	return c.rec, c.err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func strPtr(s string) *string { return &s }

func seededStore() *stubStore {
	return &stubStore{records: map[string]*domain.ShipmentRecord{
		"ABC123": {
			Courier:         strPtr("DHL"),
			Status:          strPtr("In Transit"),
			CurrentLocation: strPtr("Memphis"),
			History:         []json.RawMessage{json.RawMessage(`{"date":"2024-01-02","note":"scanned"}`)},
		},
		"Q1": {Status: strPtr("Delivered")},
	}}
}

func noCourier() *stubCourier {
	return &stubCourier{err: domain.ErrNoCourierData}
}

// ---------------------------------------------------------------------------
// Track tests
// ---------------------------------------------------------------------------

func TestTrackingService_Track_Found(t *testing.T) {
	svc := NewTrackingService(seededStore(), noCourier(), discardLogger)

	got, err := svc.Track(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &domain.TrackedShipment{
		TrackingID:      "ABC123",
		Courier:         "DHL",
		Status:          "In Transit",
		CurrentLocation: "Memphis",
		LastUpdate:      "2024-01-02",
		History:         []json.RawMessage{json.RawMessage(`{"date":"2024-01-02","note":"scanned"}`)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Track mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackingService_Track_AnyCasingResolvesToUppercase(t *testing.T) {
	store := seededStore()
	svc := NewTrackingService(store, noCourier(), discardLogger)

	for _, in := range []string{"abc123", "AbC123", "ABC123"} {
		got, err := svc.Track(context.Background(), in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got.TrackingID != "ABC123" {
			t.Errorf("%q: expected tracking id ABC123, got %q", in, got.TrackingID)
		}
	}
	for _, key := range store.lookups {
		if key != "ABC123" {
			t.Errorf("store must be queried with the uppercased key, got %q", key)
		}
	}
}

func TestTrackingService_Track_AppliesDefaults(t *testing.T) {
	svc := NewTrackingService(seededStore(), noCourier(), discardLogger)

	got, err := svc.Track(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Courier != "Unknown" || got.CurrentLocation != "Unknown" {
		t.Errorf("expected Unknown defaults, got courier=%q location=%q", got.Courier, got.CurrentLocation)
	}
	if got.Status != "Delivered" {
		t.Errorf("expected status Delivered, got %q", got.Status)
	}
	if got.LastUpdate != "N/A" {
		t.Errorf("expected last_update N/A, got %q", got.LastUpdate)
	}
	if got.History == nil || len(got.History) != 0 {
		t.Errorf("expected empty history, got %v", got.History)
	}
}

func TestTrackingService_Track_StoreErrorsPassThrough(t *testing.T) {
	cases := []error{
		domain.ErrTrackingNotFound,
		domain.ErrStoreUnavailable,
		domain.ErrStoreCorrupt,
	}

	for _, want := range cases {
		store := seededStore()
		store.err = want
		svc := NewTrackingService(store, noCourier(), discardLogger)

		got, err := svc.Track(context.Background(), "ABC123")
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
		if got != nil {
			t.Errorf("no partial result may be returned on %v", want)
		}
	}
}

func TestTrackingService_Track_UnknownID(t *testing.T) {
	svc := NewTrackingService(seededStore(), noCourier(), discardLogger)

	_, err := svc.Track(context.Background(), "xyz999")
	if !errors.Is(err, domain.ErrTrackingNotFound) {
		t.Errorf("expected ErrTrackingNotFound, got %v", err)
	}
}

func TestTrackingService_Track_Idempotent(t *testing.T) {
	svc := NewTrackingService(seededStore(), noCourier(), discardLogger)

	first, err := svc.Track(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Track(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated lookups differ (-first +second):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// Courier seam tests
// ---------------------------------------------------------------------------

func TestTrackingService_Track_CourierNoDataFallsBackToStore(t *testing.T) {
	courier := noCourier()
	store := seededStore()
	svc := NewTrackingService(store, courier, discardLogger)

	if _, err := svc.Track(context.Background(), "ABC123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if courier.calls != 1 {
		t.Errorf("expected courier to be asked once, got %d", courier.calls)
	}
	if len(store.lookups) != 1 {
		t.Errorf("expected store fallback, got %d lookups", len(store.lookups))
	}
}

func TestTrackingService_Track_CourierFailureFallsBackToStore(t *testing.T) {
	courier := &stubCourier{err: errors.New("carrier timeout")}
	svc := NewTrackingService(seededStore(), courier, discardLogger)

	got, err := svc.Track(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("courier failure must not surface, got %v", err)
	}
	if got.Courier != "DHL" {
		t.Errorf("expected store record, got courier %q", got.Courier)
	}
}

func TestTrackingService_Track_CourierRecordWins(t *testing.T) {
	courier := &stubCourier{rec: &domain.ShipmentRecord{Courier: strPtr("UPS"), Status: strPtr("Out for delivery")}}
	store := seededStore()
	svc := NewTrackingService(store, courier, discardLogger)

	got, err := svc.Track(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Courier != "UPS" || got.TrackingID != "ABC123" {
		t.Errorf("expected courier record for ABC123, got %+v", got)
	}
	if len(store.lookups) != 0 {
		t.Errorf("store must not be read when the courier answers, got %d lookups", len(store.lookups))
	}
}

func TestTrackingService_Track_NilCourier(t *testing.T) {
	svc := NewTrackingService(seededStore(), nil, discardLogger)

	if _, err := svc.Track(context.Background(), "ABC123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
