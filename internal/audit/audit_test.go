package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSubject(t *testing.T) {
	assert.Empty(t, HashSubject(""))
	h := HashSubject("client-123")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashSubject("client-123"))
	assert.NotEqual(t, h, HashSubject("client-124"))
}

func TestMemoryPublisher(t *testing.T) {
	p := NewMemoryPublisher()
	ctx := context.Background()

	require.NoError(t, p.Emit(ctx, Event{Node: "company-lookup", Branch: "success", Status: 200}))
	require.NoError(t, p.Emit(ctx, Event{Node: "aml-screening", Branch: "error", Status: 0, ErrorCode: "NETWORK_ERROR"}))

	events := p.List()
	require.Len(t, events, 2)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())

	screening := p.ListByNode("aml-screening")
	require.Len(t, screening, 1)
	assert.Equal(t, "NETWORK_ERROR", screening[0].ErrorCode)

	p.Clear()
	assert.Empty(t, p.List())
}

func TestQueueFull(t *testing.T) {
	q := NewQueue(1)
	require.NoError(t, q.Emit(context.Background(), Event{Node: "a"}))
	assert.ErrorIs(t, q.Emit(context.Background(), Event{Node: "b"}), ErrQueueFull)
}

type failingSink struct {
	mu    sync.Mutex
	calls int
}

func (f *failingSink) Emit(context.Context, Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("broker down")
}

func TestWorkerDeliversAndDrains(t *testing.T) {
	sink := NewMemoryPublisher()
	q := NewQueue(8)
	w := NewWorker(sink, q.Inbox(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, q.Emit(ctx, Event{Node: "company-lookup"}))
	assert.Eventually(t, func() bool { return len(sink.List()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// Buffered after shutdown, flushed by a later drain.
	require.NoError(t, q.Emit(context.Background(), Event{Node: "aml-screening"}))
	w.drain()
	assert.Len(t, sink.List(), 2)
}

func TestWorkerSurvivesSinkFailure(t *testing.T) {
	sink := &failingSink{}
	q := NewQueue(4)
	w := NewWorker(sink, q.Inbox(), nil)

	require.NoError(t, q.Emit(context.Background(), Event{Node: "a"}))
	require.NoError(t, q.Emit(context.Background(), Event{Node: "b"}))
	w.drain()

	assert.Equal(t, 2, sink.calls)
}

// stalledSink behaves like a producer whose broker never answers.
type stalledSink struct{}

func (stalledSink) Emit(ctx context.Context, _ Event) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWorkerShutdownIsBoundedBySlowSink(t *testing.T) {
	for i := 0; i < 10; i++ {
		q := NewQueue(4)
		require.NoError(t, q.Emit(context.Background(), Event{Node: "a"}))
		require.NoError(t, q.Emit(context.Background(), Event{Node: "b"}))
		w := NewWorker(stalledSink{}, q.Inbox(), nil, WithFlushTimeout(50*time.Millisecond))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop after cancellation")
		}
	}
}

func TestWithFlushTimeoutIgnoresNonPositive(t *testing.T) {
	w := NewWorker(NewMemoryPublisher(), NewQueue(1).Inbox(), nil, WithFlushTimeout(0))
	assert.Equal(t, DefaultFlushTimeout, w.flushTimeout)
}

func TestNewKafkaPublisherRequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "complyhub.audit")
	assert.Error(t, err)
}
