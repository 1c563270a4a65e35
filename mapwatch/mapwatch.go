// Package mapwatch watches a scenario YAML file on disk and republishes a
// freshly precomputed *gridpath.Map every time the file changes.
//
// This is an offline editing convenience, not mid-traversal re-planning: it
// only ever swaps in a wholesale replacement Map between FindPath calls,
// never while one is in flight.
package mapwatch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gridpath-dev/gridpath"
	"github.com/gridpath-dev/gridpath/scenario"
)

// Watcher reloads a scenario file into a *gridpath.Map whenever it changes
// on disk, and publishes each freshly precomputed Map on Maps.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	opts    []gridpath.Option

	mu   sync.RWMutex
	last *gridpath.Map

	// Maps receives a new *gridpath.Map after every successful reload. It is
	// buffered with capacity 1 so a slow consumer only ever sees the latest
	// Map, never a backlog of stale ones.
	Maps chan *gridpath.Map

	errs chan error
}

// New starts watching the scenario file at path and performs an initial
// load. It returns an error if the initial load or the underlying fsnotify
// watcher fails to start.
func New(path string, opts ...gridpath.Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("mapwatch: create watcher: %w", err)
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		opts:    opts,
		Maps:    make(chan *gridpath.Map, 1),
		errs:    make(chan error, 1),
	}

	if err := w.reload(); err != nil {
		fw.Close()
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("mapwatch: watch %s: %w", dir, err)
	}

	go w.loop()
	return w, nil
}

// Current returns the most recently loaded Map.
func (w *Watcher) Current() *gridpath.Map {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.last
}

// Errs surfaces reload failures (a malformed scenario file, for instance)
// without tearing down the watcher; the previous good Map remains current.
func (w *Watcher) Errs() <-chan error {
	return w.errs
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			absPath, err := filepath.Abs(w.path)
			if err != nil {
				continue
			}
			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.reload(); err != nil {
				select {
				case w.errs <- err:
				default:
				}
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) reload() error {
	s, err := scenario.Load(w.path)
	if err != nil {
		return err
	}
	m := s.NewMap(w.opts...)

	w.mu.Lock()
	w.last = m
	w.mu.Unlock()

	select {
	case <-w.Maps:
	default:
	}
	w.Maps <- m
	return nil
}
