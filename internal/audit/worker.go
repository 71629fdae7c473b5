package audit

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultFlushTimeout bounds how long a stopping Worker spends on events that
// are still buffered.
const DefaultFlushTimeout = 5 * time.Second

// ErrQueueFull is returned by Queue.Emit when the buffer has no room.
var ErrQueueFull = errors.New("audit queue full")

// Queue is a Publisher that hands events to a Worker without blocking the
// caller on the sink.
type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Event, size)}
}

func (q *Queue) Emit(_ context.Context, event Event) error {
	select {
	case q.ch <- stamp(event):
		return nil
	default:
		return ErrQueueFull
	}
}

// Inbox is the receive side consumed by a Worker.
func (q *Queue) Inbox() <-chan Event {
	return q.ch
}

// Worker drains an inbox into a sink. Sink failures are logged and the event
// is dropped.
type Worker struct {
	sink         Publisher
	inbox        <-chan Event
	logger       *slog.Logger
	flushTimeout time.Duration
}

type WorkerOption func(*Worker)

// WithFlushTimeout overrides DefaultFlushTimeout.
func WithFlushTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.flushTimeout = d
		}
	}
}

func NewWorker(sink Publisher, inbox <-chan Event, logger *slog.Logger, opts ...WorkerOption) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{sink: sink, inbox: inbox, logger: logger, flushTimeout: DefaultFlushTimeout}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done, then flushes whatever is already buffered
// within the flush timeout.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.emit(ctx, event)
		}
	}
}

// drain stops at the flush deadline so a sink that never answers cannot hold
// up shutdown. Events left in the inbox are dropped.
func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), w.flushTimeout)
	defer cancel()
	for {
		if ctx.Err() != nil {
			if left := len(w.inbox); left > 0 {
				w.logger.Warn("audit flush deadline reached", "dropped", left)
			}
			return
		}
		select {
		case event := <-w.inbox:
			w.emit(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) emit(ctx context.Context, event Event) {
	if err := w.sink.Emit(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "audit emit failed",
			"event_id", event.ID,
			"node", event.Node,
			"error", err,
		)
	}
}
