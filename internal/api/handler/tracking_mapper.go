package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// --- Service result → HTTP response ---

// History is never nil coming out of domain.Normalize; the guard keeps the
// "history": [] contract for any other TrackingService.
func toTrackingResponse(s *domain.TrackedShipment) trackingResponse {
	history := s.History
	if history == nil {
		history = []json.RawMessage{}
	}
	return trackingResponse{
		TrackingID:      s.TrackingID,
		Courier:         s.Courier,
		Status:          s.Status,
		CurrentLocation: s.CurrentLocation,
		LastUpdate:      s.LastUpdate,
		History:         history,
	}
}

// --- Lookup error → HTTP status + message ---

// LookupError maps the three lookup failure kinds to their response. ok is
// false for any other error.
func LookupError(err error) (code int, msg string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrTrackingNotFound):
		return http.StatusNotFound, MsgTrackingNotFound, true
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusInternalServerError, MsgStoreUnavailable, true
	case errors.Is(err, domain.ErrStoreCorrupt):
		return http.StatusInternalServerError, MsgStoreCorrupt, true
	}
	return 0, "", false
}
