package defs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Update is the result of one reload attempt.
type Update struct {
	Feed *Feed
	Err  error
}

// Watcher reloads the content feed when its file changes. The directory is
// watched rather than the file so editors that save by rename are seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	updates  chan Update
}

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 300 * time.Millisecond

// NewWatcher starts watching the directory of path. A non-positive debounce
// falls back to DefaultDebounce.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create feed watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to resolve feed path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch feed dir: %w", err)
	}
	return &Watcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		updates:  make(chan Update, 1),
	}, nil
}

// Updates delivers reload results. Only the latest pending result is kept.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Run processes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.Now()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.publish(Update{Err: fmt.Errorf("feed watcher: %w", err)})
		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				pending = time.Time{}
				feed, err := LoadFeed(w.path)
				w.publish(Update{Feed: feed, Err: err})
			}
		}
	}
}

func (w *Watcher) publish(u Update) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- u
}
