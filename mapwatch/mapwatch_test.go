package mapwatch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gridpath-dev/gridpath/mapwatch"
)

const fixtureV1 = `
name: initial
blocked:
  - x: 0
    z: 0
start:
  x: -5
  z: -5
end:
  x: 5
  z: 5
`

const fixtureV2 = `
name: updated
blocked:
  - x: 0
    z: 0
  - x: 1
    z: 0
start:
  x: -5
  z: -5
end:
  x: 5
  z: 5
`

func TestWatcherInitialLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(fixtureV1), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := mapwatch.New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	m := w.Current()
	if m == nil {
		t.Fatalf("Current() = nil after initial load")
	}
	if !m.IsBlocked(0, 0) {
		t.Fatalf("initial Map does not have the fixture's blocked cell")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(fixtureV1), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := mapwatch.New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	// Drain the initial publish so the next receive observes the reload.
	<-w.Maps

	if err := os.WriteFile(path, []byte(fixtureV2), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	select {
	case m := <-w.Maps:
		if !m.IsBlocked(1, 0) {
			t.Fatalf("reloaded Map does not have the updated fixture's new blocked cell")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload after write")
	}
}
