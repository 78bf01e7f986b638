package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "board.yaml")
	if err := os.WriteFile(path, []byte("name: x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event path = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for spec write")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event %q for a non-spec file", got)
	case <-time.After(250 * time.Millisecond):
	}
}

func TestWatcherCloseWithPendingEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	// fill the event buffer without reading, then shut down; the run
	// loop must exit without sending on a closed channel
	for i := 0; i < 32; i++ {
		name := filepath.Join(dir, fmt.Sprintf("spec_%d.yaml", i))
		if err := os.WriteFile(name, []byte("name: x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	for range w.Events {
		// drains until the run loop closes the channel
	}

	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
