package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc is invoked once watched changes settle.
type RunFunc func(ctx context.Context)

// Watcher monitors a doxygen XML output directory and triggers a
// post-processing run after each rebuild. Doxygen regenerates the whole
// directory, so runs key off index.xml: post-processing rewrites the
// compound files in place but never touches index.xml, which keeps the
// watcher from chasing its own writes.
type Watcher struct {
	// Debounce is the quiet period after the last change before the run
	// fires. Rebuilds touch hundreds of files in quick succession.
	Debounce time.Duration

	dir      string
	run      RunFunc
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	runChan  chan struct{}
	runMu    sync.Mutex
}

// NewWatcher returns a watcher for the XML output directory dir, invoking
// run after each doxygen rebuild settles.
func NewWatcher(dir string, run RunFunc, logger *slog.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolving watch directory: %w", err)
	}

	return &Watcher{
		Debounce: 2 * time.Second,
		dir:      absDir,
		run:      run,
		logger:   logger,
		watcher:  watcher,
		stopChan: make(chan struct{}),
		runChan:  make(chan struct{}, 1),
	}, nil
}

// Start begins monitoring the XML output directory.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.logger.Info("watching xml output", "dir", w.dir)

	go w.watchLoop(ctx)
	go w.runLoop(ctx)

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.stopChan)
	return w.watcher.Close()
}

// watchLoop monitors file system events.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only index.xml marks a rebuild
			if filepath.Base(event.Name) != "index.xml" {
				continue
			}

			switch {
			case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Rename):
				w.logger.Debug("xml index changed", "file", event.Name)
				w.trigger()
			case event.Op.Has(fsnotify.Remove):
				w.logger.Warn("xml index removed", "file", event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// runLoop fires debounced post-processing runs.
func (w *Watcher) runLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.runChan:
			// Reset the debounce timer
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.Debounce, func() {
				w.runOnce(ctx)
			})
		}
	}
}

// runOnce invokes the run callback. Runs serialize: they rewrite the same
// files in place.
func (w *Watcher) runOnce(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	begin := time.Now()
	w.run(ctx)
	w.logger.Info("post-processing run finished", "dir", w.dir, "took", time.Since(begin))
}

// trigger requests a debounced run.
func (w *Watcher) trigger() {
	select {
	case w.runChan <- struct{}{}:
	default:
		// Run already pending
	}
}
