package kernel

import "time"

// DomainEvent is a fact raised by an aggregate. The event name doubles as the
// routing key on the event sink; the struct itself is the payload.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// AggregateEvent is a DomainEvent that names the aggregate it belongs to. Sinks use
// the identifier as the partitioning key so one aggregate's events stay ordered.
type AggregateEvent interface {
	DomainEvent
	AggregateID() UUID
}

// EventRecorder collects domain events raised by an aggregate until they are pulled
// by the command handler that persisted it. Embed it by value.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends an event.
func (r *EventRecorder) Record(e DomainEvent) {
	r.events = append(r.events, e)
}

// PullEvents returns the recorded events and clears the buffer.
func (r *EventRecorder) PullEvents() []DomainEvent {
	events := r.events
	r.events = nil
	return events
}
