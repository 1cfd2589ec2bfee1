// Package watch re-runs generation whenever a snapshot file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"companion-generator/internal/logger"
	"companion-generator/internal/snapshot"
)

// DefaultDebounce batches bursts of events from editors that write in steps.
const DefaultDebounce = 200 * time.Millisecond

// RunFunc performs one generation pass. It must stop promptly and discard its
// outputs once ctx is cancelled.
type RunFunc func(ctx context.Context) error

// Watcher runs a RunFunc once at start and again after every change in the
// watched directories. A change cancels the run in flight before the next
// one starts.
type Watcher struct {
	dirs     []string
	run      RunFunc
	debounce time.Duration
	filter   func(path string) bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period that must follow an event before a run.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithFilter sets the predicate selecting relevant paths. By default only
// files with a snapshot extension count.
func WithFilter(f func(path string) bool) Option {
	return func(w *Watcher) { w.filter = f }
}

// New creates a Watcher over dirs.
func New(dirs []string, run RunFunc, opts ...Option) *Watcher {
	w := &Watcher{
		dirs:     dirs,
		run:      run,
		debounce: DefaultDebounce,
		filter:   isSnapshot,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func isSnapshot(path string) bool {
	_, err := snapshot.FormatFromPath(path)
	return err == nil
}

// Run blocks until ctx is done. Errors from individual runs are logged, not
// returned; only watcher setup failures are.
func (w *Watcher) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	log.Info("watching for changes", "directories", len(w.dirs))

	r := &inflight{}
	defer r.stop()

	r.start(ctx, w.run)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) || !w.filter(ev.Name) {
				continue
			}

			log.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			log.Warn("file watcher error", "error", err)

		case <-timer.C:
			r.start(ctx, w.run)
		}
	}
}

// inflight tracks the single run allowed at a time.
type inflight struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// start cancels and waits for the current run, then launches a new one.
func (r *inflight) start(ctx context.Context, run RunFunc) {
	r.stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.cancel = cancel
	r.done = done

	go func() {
		defer close(done)
		defer cancel()

		err := run(runCtx)

		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			logger.FromContext(ctx).Debug("run superseded")
		default:
			logger.FromContext(ctx).Error("run failed", "error", err)
		}
	}()
}

func (r *inflight) stop() {
	if r.cancel == nil {
		return
	}

	r.cancel()
	<-r.done

	r.cancel = nil
	r.done = nil
}
