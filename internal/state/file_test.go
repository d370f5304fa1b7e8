package state

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/slazien/trackguard/internal/models"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation_state.json")
	store := NewFileStore(path)

	st := models.ValidationState{
		CurrentInterval:   40,
		OutputsSinceCheck: 7,
		TotalOutputs:      123,
		TotalChecks:       6,
		TotalFailures:     1,
		Checks: []models.ValidationRecord{
			{Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), Passed: true, Violations: []string{}},
			{Timestamp: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), Passed: false, Violations: []string{"contradicts understeer rule"}},
		},
	}

	if err := store.Save(st); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(st, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", st, loaded)
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file errored: %v", err)
	}
	if !reflect.DeepEqual(st, models.DefaultValidationState()) {
		t.Errorf("missing file did not yield defaults: %+v", st)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation_state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("expected error for corrupt state file")
	}
}

func TestFileStore_IntervalOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation_state.json")
	if err := os.WriteFile(path, []byte(`{"current_interval": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("expected error for out-of-range interval")
	}
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validation_state.json")
	store := NewFileStore(path)

	if err := store.Save(models.DefaultValidationState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Save")
	}
}

func TestFileStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	store := NewFileStore(path)

	if err := store.Save(models.DefaultValidationState()); err != nil {
		t.Fatalf("Save into missing dir failed: %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load after nested Save failed: %v", err)
	}
}
