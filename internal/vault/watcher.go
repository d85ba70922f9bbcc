package vault

import (
	"fmt"
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the vault root and reports entry churn so the UI can
// refresh its listing snapshot without polling.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// Watch starts watching the root. onChange runs on the watcher goroutine
// for every committed create, remove, or rename; partial files are ignored
// so in-flight writes do not trigger refreshes.
func (v *Vault) Watch(onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create vault watcher: %w", err)
	}
	if err := fsw.Add(v.root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch vault root: %w", err)
	}

	w := &Watcher{fsw: fsw}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func()) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if strings.HasSuffix(event.Name, PartialSuffix) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				onChange()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Vault watcher error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
