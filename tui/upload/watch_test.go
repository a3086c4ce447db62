package upload_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scandash/tui/shared"
	"github.com/marcus/scandash/tui/upload"
)

func TestWatchArchiveStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.zip")
	if err := os.WriteFile(path, []byte("zip"), 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}

	cancel := make(chan struct{})
	cmd := upload.WatchArchive(path, cancel)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	close(cancel)

	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("cancelled watcher returned %T, want nil", msg)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not exit after cancel")
	}
}

func TestWatchArchiveFiresOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.zip")
	if err := os.WriteFile(path, []byte("zip"), 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}

	cancel := make(chan struct{})
	defer close(cancel)
	cmd := upload.WatchArchive(path, cancel)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	// Rewrite repeatedly: the watcher needs a moment to establish itself
	// and a single write could land before it does.
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case msg := <-done:
			changed, ok := msg.(shared.ArchiveChangedMsg)
			if !ok {
				t.Fatalf("got %T, want ArchiveChangedMsg", msg)
			}
			if changed.Path != path {
				t.Errorf("Path = %q, want %q", changed.Path, path)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("rewritten"), 0o644); err != nil {
				t.Fatalf("rewriting archive: %v", err)
			}
		case <-deadline:
			t.Fatal("watcher never reported the rewrite")
		}
	}
}
