package ports

import (
	"context"

	"wasteflow/internal/core/domain/model/kernel"
)

// EventPublisher hands committed domain events to their consumers. It must
// not block the caller; events that cannot be queued are dropped and logged.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// EventHandler consumes domain events outside the transaction that raised them.
type EventHandler interface {
	Handle(ctx context.Context, event kernel.DomainEvent) error
}
