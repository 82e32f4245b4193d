package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meridian-cargo/website/internal/core/domain"
)

const sampleStore = `{
  "MC1": {"courier": "DHL", "status": "In Transit", "current_location": "Memphis",
          "history": [{"date": "2024-01-02"}, {"date": "2024-01-01"}]},
  "lower": {}
}`

func setupRoot(t *testing.T, store string) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "data", "shipments.json"), []byte(store), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APP_ROOT", root)
	t.Setenv("STORE_FILE", "data/shipments.json")
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrackCmd_Found(t *testing.T) {
	setupRoot(t, sampleStore)

	out, err := execute(t, "track", "mc1")
	if err != nil {
		t.Fatalf("track: %v", err)
	}

	var got domain.TrackedShipment
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.TrackingID != "MC1" || got.LastUpdate != "2024-01-02" || len(got.History) != 2 {
		t.Errorf("unexpected output %+v", got)
	}
}

func TestTrackCmd_SparseRecordPrintsDefaults(t *testing.T) {
	setupRoot(t, `{"Q1": {"status": "Delivered"}}`)

	out, err := execute(t, "track", "q1")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	for _, want := range []string{`"courier": "Unknown"`, `"last_update": "N/A"`, `"history": []`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestTrackCmd_NotFound(t *testing.T) {
	setupRoot(t, sampleStore)

	_, err := execute(t, "track", "nope")
	if err == nil || !strings.Contains(err.Error(), "Tracking ID not found") {
		t.Fatalf("expected not found message, got %v", err)
	}
}

func TestTrackCmd_CorruptStore(t *testing.T) {
	setupRoot(t, "{ not json")

	_, err := execute(t, "track", "MC1")
	if err == nil || err.Error() != "System Error: Database Corrupt" {
		t.Fatalf("expected corrupt message, got %v", err)
	}
}

func TestCheckStoreCmd(t *testing.T) {
	setupRoot(t, sampleStore)

	out, err := execute(t, "check-store")
	if err != nil {
		t.Fatalf("check-store: %v", err)
	}
	if !strings.Contains(out, "2 entries") || !strings.Contains(out, "lower: key is not uppercase") {
		t.Errorf("unexpected report:\n%s", out)
	}

	if _, err := execute(t, "check-store", "--strict"); err == nil {
		t.Error("expected --strict to fail when issues exist")
	}
}
