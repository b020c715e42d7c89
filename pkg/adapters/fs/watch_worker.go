package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/rapport/pkg/core"
)

// Watch reports external changes to the data file until ctx is cancelled.
// Writes made by this repository are not reported. The returned channel is
// closed when the watcher stops.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// The directory is watched rather than the file: atomic saves replace the inode.
	if err := watcher.Add(r.dir()); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.dir(), err)
	}

	events := make(chan core.Event)
	w := &watchWorker{
		repo:      r,
		target:    filepath.Clean(r.Path),
		events:    events,
		done:      make(chan struct{}),
		watcher:   watcher,
		debouncer: newDebouncer(r.config.Debounce),
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		w.report(fmt.Errorf("watcher stopped: %w", err))
	}))
	return events, nil
}

type watchWorker struct {
	repo      *Repository
	target    string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer

	// done is closed before events. Senders hold sendMu for reading so that
	// events is never closed under them.
	done   chan struct{}
	sendMu sync.RWMutex
}

func (w *watchWorker) logger() *slog.Logger {
	return w.repo.config.Logger
}

func (w *watchWorker) report(err error) {
	if w.repo.config.ErrorHandler != nil {
		w.repo.config.ErrorHandler(err)
		return
	}
	w.logger().Error("watcher error", "error", err)
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.logger().Enabled(ctx, slog.LevelDebug) {
				w.logger().Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()
	defer w.closeEvents()
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// In-flight callbacks must finish before the events channel is closed.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			w.report(wErr)
		}
	}
}

// processFilesystemEvent filters events down to the data file and debounces them.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	w.logger().Debug("event received", "name", event.Name, "op", event.Op.String())

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.debouncer.add(core.Event{Type: eType, Source: w.target}, func(e core.Event) {
		w.emit(ctx, e)
	})
	return true
}

// closeEvents stops pending senders and closes the events channel.
func (w *watchWorker) closeEvents() {
	close(w.done)
	w.sendMu.Lock()
	defer w.sendMu.Unlock()
	close(w.events)
}

// emit re-checks the file once the burst is over and drops our own writes.
func (w *watchWorker) emit(ctx context.Context, e core.Event) {
	data, err := os.ReadFile(w.target)
	switch {
	case errors.Is(err, os.ErrNotExist):
		e.Type = core.EventDelete
	case err != nil:
		w.report(fmt.Errorf("failed to read %s: %w", w.target, err))
		return
	case w.repo.isOwnWrite(data):
		w.logger().Debug("ignoring own write", "path", w.target)
		return
	case e.Type == core.EventDelete:
		e.Type = core.EventCreate
	}
	e.Timestamp = time.Now().Unix()

	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- e:
	case <-w.done:
	case <-ctx.Done():
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
