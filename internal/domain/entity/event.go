package entity

import "time"

// DomainEvent is an immutable fact recorded by an aggregate. Events stay on
// the aggregate until the caller dispatches and clears them; nothing in this
// layer publishes to a transport.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// EventCarrier is the capability every aggregate root implements: it holds
// recorded domain events and can clear them after dispatch.
type EventCarrier interface {
	DomainEvents() []DomainEvent
	ClearEvents()
}

// eventRecorder is embedded in every aggregate root. The event list is
// append-only; DomainEvents hands out a copy so callers can never mutate
// the recorded history.
type eventRecorder struct {
	events []DomainEvent
}

func (r *eventRecorder) record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the recorded events.
func (r *eventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)

	return out
}

// ClearEvents discards the recorded events after dispatch.
func (r *eventRecorder) ClearEvents() {
	r.events = nil
}
