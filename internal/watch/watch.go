// Package watch notices image files appearing or disappearing in the
// directory of the current image so the viewer can refresh its sibling
// listing. Events are reported on a channel; the viewer forwards them
// into its own event queue so session state is only touched on the event
// loop.
package watch

import (
	"fmt"
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/example/shineyview/internal/imagefile"
)

// Watcher follows one directory at a time and reports changes to image
// files in it.
type Watcher struct {
	fsw *fsnotify.Watcher

	mu  sync.Mutex
	dir string

	events chan string
	done   chan struct{}
}

// New creates a stopped watcher. Call Watch to point it at a directory.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fsw:    fsw,
		events: make(chan string, 8),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events delivers the path of each image file that was created, removed
// or renamed in the watched directory.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Watch switches the watcher to dir, dropping the previously watched
// directory. An empty dir stops watching entirely.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsw.Remove(w.dir); err != nil {
			log.Printf("watch: dropping %s: %v", w.dir, err)
		}
		w.dir = ""
	}
	if dir == "" {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.dir = dir
	return nil
}

// Close stops the watcher and its goroutine.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			select {
			case w.events <- ev.Name:
			default:
				// A pending event already forces a rescan; the rescan
				// reads the directory fresh, so dropping this one loses
				// nothing.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		case <-w.done:
			return
		}
	}
}

// relevant keeps only events that can change the sibling listing: image
// files coming, going or changing name.
func relevant(ev fsnotify.Event) bool {
	if !imagefile.IsSupported(ev.Name) {
		return false
	}
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)
}
