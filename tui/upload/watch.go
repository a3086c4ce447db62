package upload

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/marcus/scandash/tui/shared"
)

// WatchArchive watches the analyzed archive and fires once when it is
// rewritten on disk, so stale results can be flagged. The watcher is placed
// on the parent directory: editors and build tools replace files via rename,
// which a file-level watch would lose track of. Closing cancel releases the
// watcher without a message; the app does this when a run is replaced or
// reset.
func WatchArchive(path string, cancel <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		defer watcher.Close()

		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return nil
		}

		name := filepath.Base(path)
		for {
			select {
			case <-cancel:
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					return shared.ArchiveChangedMsg{Path: path}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
