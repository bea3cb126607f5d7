// Package watcher implements rebuild-on-change support for the zc command
// line. It watches a source tree through fsnotify, filters events down to
// .z source files, and delivers debounced batches of changed paths.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watcher wraps an fsnotify watcher with debouncing and glob excludes.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	exclude  []glob.Glob
	onChange func([]string)

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// New builds a Watcher that calls onChange with a sorted batch of changed
// source paths once events have settled for the debounce interval.
func New(debounce time.Duration, exclude []string, onChange func([]string)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		onChange: onChange,
		pending:  make(map[string]struct{}),
	}
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.exclude = append(w.exclude, g)
	}
	return w, nil
}

// Watch registers root and every directory below it, then starts the event
// loop in its own goroutine.
func (w *Watcher) Watch(root string) error {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if w.excluded(path) {
				return filepath.SkipDir
			}
			return w.fs.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	go w.run()
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".z") || w.excluded(ev.Name) {
				continue
			}
			w.enqueue(ev.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "err", err)
		}
	}
}

// enqueue records a changed path and resets the debounce timer so rapid
// bursts of events collapse into a single callback.
func (w *Watcher) enqueue(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	w.onChange(paths)
}

func (w *Watcher) excluded(path string) bool {
	for _, g := range w.exclude {
		if g.Match(path) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// Close stops the underlying fsnotify watcher and cancels a pending
// debounce timer.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fs.Close()
}
