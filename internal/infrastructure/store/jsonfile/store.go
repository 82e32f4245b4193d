// Package jsonfile implements the shipment store on top of a single,
// hand-maintained JSON document mapping uppercase tracking IDs to records.
//
// The file is re-read on every call so operator edits take effect without a
// restart. The application never writes to it.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// Store reads shipment records from the JSON document at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path. The file does not need
// to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path reports the file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Find reads the document and decodes only the entry stored under trackingID.
func (s *Store) Find(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	raw, ok := doc[trackingID]
	if !ok || isNull(raw) {
		return nil, domain.ErrTrackingNotFound
	}

	var rec domain.ShipmentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: entry %q: %w", domain.ErrStoreCorrupt, trackingID, err)
	}
	return &rec, nil
}

// Load reads and parses the whole document, leaving entries undecoded.
// Any read failure maps to domain.ErrStoreUnavailable; anything that is not a
// JSON object maps to domain.ErrStoreCorrupt.
func (s *Store) Load(_ context.Context) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStoreCorrupt, s.path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s: document is null", domain.ErrStoreCorrupt, s.path)
	}
	return doc, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
