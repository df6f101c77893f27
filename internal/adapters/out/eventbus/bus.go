// Package eventbus is the in-process channel bus that carries committed
// domain events to their handlers.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/ports"
)

// ErrBufferFull is returned by Publish for every event that did not fit.
var ErrBufferFull = errors.New("event bus buffer is full")

const DefaultBufferSize = 256

// ChannelBus queues events on one buffered channel and dispatches them from
// a single consumer goroutine started with Run. Publish never blocks: events
// that do not fit are dropped and logged.
type ChannelBus struct {
	queue    chan kernel.DomainEvent
	handlers map[string][]ports.EventHandler
	mutex    sync.RWMutex
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*ChannelBus)(nil)

func NewChannelBus(bufferSize int, logger *slog.Logger) *ChannelBus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &ChannelBus{
		queue:    make(chan kernel.DomainEvent, bufferSize),
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger.With("component", "event_bus"),
	}
}

// Subscribe registers handler for the events named eventName.
func (b *ChannelBus) Subscribe(eventName string, handler ports.EventHandler) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

func (b *ChannelBus) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var dropped int
	for _, event := range events {
		select {
		case b.queue <- event:
		default:
			dropped++
			b.logger.ErrorContext(ctx, "dropping domain event, buffer is full",
				"event", event.EventName(),
				"event_id", event.EventID().String(),
			)
		}
	}
	if dropped > 0 {
		return ErrBufferFull
	}
	return nil
}

// Run dispatches queued events until ctx is cancelled, then drains what is
// already queued and returns.
func (b *ChannelBus) Run(ctx context.Context) {
	b.logger.Info("event bus started", "buffer", cap(b.queue))
	for {
		select {
		case event := <-b.queue:
			b.dispatch(ctx, event)
		case <-ctx.Done():
			b.drain()
			b.logger.Info("event bus stopped")
			return
		}
	}
}

func (b *ChannelBus) drain() {
	// the run context is already cancelled; handlers get a fresh one
	ctx := context.Background()
	for {
		select {
		case event := <-b.queue:
			b.dispatch(ctx, event)
		default:
			return
		}
	}
}

func (b *ChannelBus) dispatch(ctx context.Context, event kernel.DomainEvent) {
	b.mutex.RLock()
	handlers := b.handlers[event.EventName()]
	b.mutex.RUnlock()

	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				"event", event.EventName(),
				"event_id", event.EventID().String(),
				"error", err,
			)
		}
	}
}
