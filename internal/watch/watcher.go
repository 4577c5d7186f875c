// Package watch delivers debounced change batches for a source tree of
// category directories and plain-text term files.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period a path must hold before it is reported.
const debounce = 100 * time.Millisecond

// Watcher monitors a source root recursively and reports changed paths in
// batches, one batch per quiet period.
type Watcher struct {
	Root    string
	Changes <-chan []string // Read-only external channel

	changes chan []string // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given source root.
func NewWatcher(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan []string, 16)
	w := &Watcher{
		Root:    root,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start watches the root and every directory below it, then begins
// delivering batches. Directories created later are picked up as their
// create events arrive.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per path.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				rest := make([]string, 0, len(pending))
				for path := range pending {
					rest = append(rest, path)
				}
				w.emit(rest)
				return
			}

			if !isSourcePath(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				// New category folders need their own watch.
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					_ = w.watcher.Add(event.Name)
				}
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			var quiet []string
			for path, t := range pending {
				if now.Sub(t) >= debounce {
					quiet = append(quiet, path)
					delete(pending, path)
				}
			}
			w.emit(quiet)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

// emit sends one sorted batch, if there is anything to send.
func (w *Watcher) emit(paths []string) {
	if len(paths) == 0 {
		return
	}
	slices.Sort(paths)
	w.changes <- paths
}

// isSourcePath reports whether a path can affect synchronization: term
// files and directories (anything without an extension) count, hidden
// files and foreign extensions do not.
func isSourcePath(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := filepath.Ext(base)
	return ext == "" || strings.EqualFold(ext, ".txt")
}
