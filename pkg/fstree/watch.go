package fstree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher turns raw filesystem events under a root into debounced rescan
// hints. It never mutates engine state itself: the engine is single-threaded
// by contract, so the host drains Events on its own event loop and triggers
// the rescan there.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	events  chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	debounce  time.Duration
	lastEvent time.Time
}

// NewWatcher creates a watcher for the given root directory.
func NewWatcher(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		root:     root,
		watcher:  fsw,
		events:   make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		debounce: 200 * time.Millisecond,
	}, nil
}

// Start begins watching the root and its immediate subdirectories. Deeper
// levels are covered indirectly: any change that creates or removes a
// subtree touches a watched parent first, and the rescan that follows is a
// full rebuild anyway.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}
	entries, err := os.ReadDir(w.root)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() || entry.Name() == ".git" {
				continue
			}
			// Best effort; an unwatchable subdirectory is not fatal.
			_ = w.watcher.Add(filepath.Join(w.root, entry.Name()))
		}
	}

	go w.watchLoop()
	return nil
}

// Events delivers one value per debounced burst of filesystem changes. The
// channel has capacity one: a pending hint coalesces with later ones.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Stop shuts the watcher down and closes the event channel.
func (w *Watcher) Stop() {
	w.cancel()
	w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	defer close(w.events)
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			now := time.Now()
			if now.Sub(w.lastEvent) < w.debounce {
				continue
			}
			w.lastEvent = now

			select {
			case w.events <- struct{}{}:
			default:
				// A rescan hint is already pending.
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
