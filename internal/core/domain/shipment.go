package domain

import (
	"encoding/json"
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults applied when a stored record omits a field.
const (
	DefaultUnknown    = "Unknown"
	DefaultLastUpdate = "N/A"
)

var (
	// ErrStoreUnavailable means the shipment store could not be read at all.
	ErrStoreUnavailable = errors.New("shipment store unavailable")
	// ErrStoreCorrupt means the store was read but is not valid JSON of the expected shape.
	ErrStoreCorrupt = errors.New("shipment store corrupt")
	// ErrTrackingNotFound means the store is healthy but has no entry for the ID.
	ErrTrackingNotFound = errors.New("tracking id not found")
	// ErrNoCourierData is returned by courier clients that have nothing for an ID.
	ErrNoCourierData = errors.New("no courier data available")
)

// NormalizeTrackingID uppercases an identifier the way store keys are written.
// No other validation is applied.
func NormalizeTrackingID(id string) string {
	// Casers carry state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(id)
}

// ShipmentRecord is one entry of the hand-maintained store, keyed by uppercase
// tracking ID. Every field is optional. Text fields holding numbers or other
// non-string values are kept as their JSON text.
type ShipmentRecord struct {
	Courier         *string           `json:"courier"`
	Status          *string           `json:"status"`
	CurrentLocation *string           `json:"current_location"`
	History         []json.RawMessage `json:"history"`
}

func (r *ShipmentRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Courier         json.RawMessage   `json:"courier"`
		Status          json.RawMessage   `json:"status"`
		CurrentLocation json.RawMessage   `json:"current_location"`
		History         []json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ShipmentRecord{
		Courier:         scalarText(raw.Courier),
		Status:          scalarText(raw.Status),
		CurrentLocation: scalarText(raw.CurrentLocation),
		History:         raw.History,
	}
	return nil
}

// TrackedShipment is the fixed-shape result of a successful lookup.
// Its JSON form is the lookup result printed by the CLI.
type TrackedShipment struct {
	TrackingID      string `json:"tracking_id"`
	Courier         string `json:"courier"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
	LastUpdate      string `json:"last_update"`
	// History holds the stored entries verbatim, most recent first. Never nil.
	History []json.RawMessage `json:"history"`
}
