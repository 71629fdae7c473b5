package audit

import (
	"context"
	"sync"
)

// Publisher sinks audit events.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// MemoryPublisher keeps events in process. Used in tests and when no broker
// is configured.
type MemoryPublisher struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, stamp(event))
	return nil
}

// List returns a copy of the recorded events, oldest first.
func (p *MemoryPublisher) List() []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Event{}, p.events...)
}

// ListByNode returns the recorded events for one node.
func (p *MemoryPublisher) ListByNode(node string) []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []Event
	for _, e := range p.events {
		if e.Node == node {
			out = append(out, e)
		}
	}
	return out
}

func (p *MemoryPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
