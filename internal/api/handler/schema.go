package handler

import "encoding/json"

// Client-facing messages for lookup failures. The site's front end shows
// them verbatim.
const (
	MsgStoreUnavailable = "System Error: Database Unavailable"
	MsgStoreCorrupt     = "System Error: Database Corrupt"
	MsgTrackingNotFound = "Tracking ID not found. Please verify your ID or contact support."
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// trackingResponse is the JSON contract of GET /api/track/{tracking_id}.
// It is kept separate from domain.TrackedShipment so the wire shape does not
// follow internal changes.
type trackingResponse struct {
	TrackingID      string            `json:"tracking_id"      example:"ABC123"`
	Courier         string            `json:"courier"          example:"DHL"`
	Status          string            `json:"status"           example:"In Transit"`
	CurrentLocation string            `json:"current_location" example:"Memphis"`
	LastUpdate      string            `json:"last_update"      example:"2024-01-02"`
	History         []json.RawMessage `json:"history"          swaggertype:"array,object"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}
