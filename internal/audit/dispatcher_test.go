package audit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-scheduler/internal/audit"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
	block  chan struct{}
	err    error
}

func (s *recordingSink) Log(_ context.Context, ev audit.Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func TestDispatcher_DeliversInOrderAndDrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := audit.NewDispatcher(sink, zap.NewNop(), 10)

	d.Dispatch(audit.Event{Action: "appointment_created"})
	d.Dispatch(audit.Event{Action: "appointment_cancelled"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, []string{"appointment_created", "appointment_cancelled"}, sink.actions())
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := audit.NewDispatcher(sink, zap.NewNop(), 1)

	// first event is picked up by the worker and blocks there,
	// second fills the buffer, the rest are dropped
	d.Dispatch(audit.Event{Action: "a"})
	require.Eventually(t, func() bool { return d.Pending() == 0 }, time.Second, time.Millisecond)
	d.Dispatch(audit.Event{Action: "b"})
	d.Dispatch(audit.Event{Action: "c"})
	d.Dispatch(audit.Event{Action: "d"})

	close(sink.block)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, []string{"a", "b"}, sink.actions())
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := audit.NewDispatcher(sink, zap.NewNop(), 4)

	d.Dispatch(audit.Event{Action: "x"})
	d.Dispatch(audit.Event{Action: "y"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Len(t, sink.actions(), 2)
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := audit.NewDispatcher(sink, zap.NewNop(), 10)

	d.Dispatch(audit.Event{Action: "appointment_created"})
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(audit.Event{Action: "appointment_cancelled"})
	})
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, []string{"appointment_created"}, sink.actions())
}
