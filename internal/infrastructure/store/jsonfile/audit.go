package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meridian-cargo/website/internal/core/domain"
)

// AuditIssue describes one problem found in a store entry. Issues are
// warnings: lookups still succeed for every entry with a well-formed shape.
type AuditIssue struct {
	TrackingID string
	Problem    string
}

// AuditReport summarizes a full pass over the store document.
type AuditReport struct {
	Path    string
	Entries int
	Issues  []AuditIssue
}

// recordView is the validated projection of a stored record.
type recordView struct {
	Courier         *string `json:"courier"          validate:"required"`
	Status          *string `json:"status"           validate:"required"`
	CurrentLocation *string `json:"current_location" validate:"required"`
}

var auditValidator = newAuditValidator()

func newAuditValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// Audit checks every entry for the problems an operator editing the file by
// hand tends to introduce. It fails only when the document itself cannot be
// loaded.
func (s *Store) Audit(ctx context.Context) (*AuditReport, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &AuditReport{Path: s.path, Entries: len(doc)}
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		for _, problem := range auditEntry(key, doc[key]) {
			report.Issues = append(report.Issues, AuditIssue{TrackingID: key, Problem: problem})
		}
	}
	return report, nil
}

func auditEntry(key string, raw json.RawMessage) []string {
	var problems []string

	if domain.NormalizeTrackingID(key) != key {
		problems = append(problems, "key is not uppercase and can never be looked up")
	}
	if isNull(raw) {
		return append(problems, "entry is null and reports as not found")
	}

	var rec domain.ShipmentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return append(problems, fmt.Sprintf("entry is not a valid shipment record: %v", err))
	}

	err := auditValidator.Struct(recordView{
		Courier:         rec.Courier,
		Status:          rec.Status,
		CurrentLocation: rec.CurrentLocation,
	})
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			problems = append(problems, fmt.Sprintf("%s is missing and defaults to %q", fe.Field(), domain.DefaultUnknown))
		}
	}

	if len(rec.History) == 0 {
		problems = append(problems, fmt.Sprintf("history is empty; last_update reports %q", domain.DefaultLastUpdate))
	}
	for i, entry := range rec.History {
		if _, ok := domain.HistoryDate(entry); !ok {
			problems = append(problems, fmt.Sprintf("history[%d] has no date", i))
		}
	}
	return problems
}
