package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rapport/pkg/core"
)

func TestSource_ForwardsAndCloses(t *testing.T) {
	in := make(chan core.Event, 1)
	src := NewSource(in)
	require.NoError(t, src.Start(context.Background()))

	in <- core.Event{Type: core.EventModify, Source: "addressbook.json"}
	select {
	case e := <-src.Events():
		assert.Equal(t, "MODIFY addressbook.json", e.String())
	case <-time.After(time.Second):
		t.Fatal("event not forwarded")
	}

	close(in)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("source not closed")
	}
}
