// Package eventtest provides an in-memory publisher that records events for assertions.
package eventtest

import (
	"context"
	"sync"

	"github.com/osse101/TextMaple_Go/internal/event"
)

// Recorder is an event.Publisher that keeps every published event
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records the event
func (r *Recorder) Publish(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// Types returns the recorded event types in publish order
func (r *Recorder) Types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]event.Type, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

// OfType returns the recorded events of one type
func (r *Recorder) OfType(eventType string) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == event.Type(eventType) {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops everything recorded
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
