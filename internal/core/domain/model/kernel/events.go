package kernel

import "time"

// DomainEvent is a fact raised by an aggregate while handling a command.
// Events are collected on the aggregate and published only after the unit
// of work that persisted it commits.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the envelope shared by all domain events. Concrete
// events embed it and add their payload as exported fields.
type BaseEvent struct {
	id         UUID
	name       string
	occurredAt time.Time
}

func NewBaseEvent(name string, at time.Time) BaseEvent {
	return BaseEvent{
		id:         NewUUID(),
		name:       name,
		occurredAt: at,
	}
}

func (e BaseEvent) EventID() UUID {
	return e.id
}

func (e BaseEvent) EventName() string {
	return e.name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// EventSource is implemented by aggregates that raise domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder buffers raised events. Aggregates keep one as an unexported
// field and expose DomainEvents/ClearDomainEvents through it.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Raise(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
