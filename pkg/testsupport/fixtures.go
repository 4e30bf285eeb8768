package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formstate/pkg/list"
	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/snapshot"
)

// MustLoadSnapshot reads a YAML list snapshot fixture and fails the test on
// error.
func MustLoadSnapshot(t *testing.T, path string) snapshot.Snapshot {
	t.Helper()

	snap, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	return snap
}

// LoadSnapshot returns a snapshot without requiring testing.T, allowing callers
// to wire fixtures in setup functions.
func LoadSnapshot(path string) (snapshot.Snapshot, error) {
	if path == "" {
		return snapshot.Snapshot{}, errors.New("testsupport: snapshot path is required")
	}
	snap, err := snapshot.Load(path)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("testsupport: %w", err)
	}
	return snap, nil
}

// MustDeriveRecords derives elements for a dynamic-record field with
// per-field handler keying. A nil OnChange is replaced with a no-op.
func MustDeriveRecords(t *testing.T, field model.ListField[list.DynamicRecord], childKey func(list.DynamicRecord) string) []list.Element[list.DynamicRecord] {
	t.Helper()

	if field.OnChange == nil {
		field.OnChange = func(model.Transform[list.DynamicRecord]) {}
	}
	ctrl := list.New(list.RecordSchema(), list.WithHandlerKeying(list.KeyByIndexAndField))
	elements, err := ctrl.Derive(list.Props[list.DynamicRecord]{Field: field, ChildKey: childKey})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	return elements
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
