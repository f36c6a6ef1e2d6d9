package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPoll() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

func TestPumpStopsOnCancelWithFullBuffer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go func() {
		pump(ctx, keyPoll, events)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(events) == 1 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked after cancel")
	}
}

func TestPumpStopsWhenScreenCloses(t *testing.T) {
	events := make(chan tcell.Event, 4)
	calls := 0
	poll := func() tcell.Event {
		calls++
		if calls > 2 {
			return nil
		}
		return keyPoll()
	}
	pump(context.Background(), poll, events)
	assert.Len(t, events, 2)
}
