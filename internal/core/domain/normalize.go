package domain

import (
	"bytes"
	"encoding/json"
)

// Normalize maps a stored record onto the response shape, applying the
// declared default for every missing field. trackingID must already be
// normalized.
func Normalize(trackingID string, r ShipmentRecord) TrackedShipment {
	history := r.History
	if history == nil {
		history = []json.RawMessage{}
	}

	return TrackedShipment{
		TrackingID:      trackingID,
		Courier:         valueOr(r.Courier, DefaultUnknown),
		Status:          valueOr(r.Status, DefaultUnknown),
		CurrentLocation: valueOr(r.CurrentLocation, DefaultUnknown),
		LastUpdate:      lastUpdate(history),
		History:         history,
	}
}

// HistoryDate returns the date of a single history entry. Non-string dates
// are reported as their JSON text. Entries that are not objects, or have no
// date, report false.
func HistoryDate(entry json.RawMessage) (string, bool) {
	var e struct {
		Date json.RawMessage `json:"date"`
	}
	if err := json.Unmarshal(entry, &e); err != nil {
		return "", false
	}
	d := scalarText(e.Date)
	if d == nil {
		return "", false
	}
	return *d, true
}

// lastUpdate reads the date of the first entry; the store lists newest first.
func lastUpdate(history []json.RawMessage) string {
	if len(history) == 0 {
		return DefaultLastUpdate
	}
	if d, ok := HistoryDate(history[0]); ok {
		return d
	}
	return DefaultLastUpdate
}

// scalarText reads a stored field as text: strings are unquoted, any other
// JSON value keeps its compact JSON text. Absent and null fields are nil.
func scalarText(raw json.RawMessage) *string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil
	}
	s = buf.String()
	return &s
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
