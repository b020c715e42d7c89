package fs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/rapport/pkg/core"
)

func newTestWorker(t *testing.T) *watchWorker {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addressbook.json")
	return &watchWorker{
		repo:   NewRepository(Config{Path: path}),
		target: path,
		events: make(chan core.Event),
		done:   make(chan struct{}),
	}
}

func TestWatchWorker_EmitAfterClose(t *testing.T) {
	w := newTestWorker(t)
	w.closeEvents()

	assert.NotPanics(t, func() {
		w.emit(context.Background(), core.Event{Type: core.EventModify, Source: w.target})
	})
	_, ok := <-w.events
	assert.False(t, ok)
}

func TestWatchWorker_CloseReleasesBlockedEmit(t *testing.T) {
	w := newTestWorker(t)

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		// Nobody reads events, so this blocks until the worker shuts down.
		w.emit(context.Background(), core.Event{Type: core.EventModify, Source: w.target})
	}()

	time.Sleep(20 * time.Millisecond)
	w.closeEvents()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("emit still blocked after close")
	}
}
