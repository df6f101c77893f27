// Package eventhandlers consumes committed domain events outside the
// transaction that raised them.
package eventhandlers

import (
	"context"
	"log/slog"
	"time"

	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/domain/services"
	"wasteflow/internal/core/ports"
)

type (
	NotificationUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		NotificationRepository() ports.NotificationRepository
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// NotificationDispatcher turns request and complaint events into stored
// notifications. Broadcasts go to the store in one batch. Failures are
// returned to the bus, which logs them; events are never retried.
type NotificationDispatcher struct {
	uowFactory NotificationUoWFactory
	users      ports.UserDirectory
	fanout     services.NotificationFanout
	logger     *slog.Logger
}

var _ ports.EventHandler = NotificationDispatcher{}

func NewNotificationDispatcher(
	uowFactory NotificationUoWFactory,
	users ports.UserDirectory,
	fanout services.NotificationFanout,
	logger *slog.Logger,
) NotificationDispatcher {
	return NotificationDispatcher{
		uowFactory: uowFactory,
		users:      users,
		fanout:     fanout,
		logger:     logger.With("component", "notification_dispatcher"),
	}
}

// SubscribedEvents lists the event names the dispatcher has to be
// registered for.
func (d NotificationDispatcher) SubscribedEvents() []string {
	return []string{
		request.CreatedEventName,
		request.StartedEventName,
		request.CompletedEventName,
		complaint.CreatedEventName,
		complaint.UpdatedEventName,
	}
}

func (d NotificationDispatcher) Handle(ctx context.Context, event kernel.DomainEvent) error {
	audience, err := d.audience(ctx, d.fanout.Needs(event))
	if err != nil {
		return err
	}

	plan, err := d.fanout.Plan(event, audience, time.Now().UTC())
	if err != nil {
		return err
	}
	if plan.IsEmpty() {
		return nil
	}

	uow := d.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	for _, n := range plan.Direct {
		if err = repo.Add(ctx, n); err != nil {
			return err
		}
	}
	if len(plan.Broadcast) > 0 {
		if err = repo.AddBatch(ctx, plan.Broadcast); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	d.logger.DebugContext(ctx, "notifications stored",
		"event", event.EventName(),
		"direct", len(plan.Direct),
		"broadcast", len(plan.Broadcast),
	)
	return nil
}

func (d NotificationDispatcher) audience(ctx context.Context, needs services.AudienceNeeds) (services.Audience, error) {
	var (
		audience services.Audience
		err      error
	)
	if needs.CompanyUsers {
		if audience.CompanyUsers, err = d.users.ListActiveIDsByType(ctx, ports.WasteCompany); err != nil {
			return services.Audience{}, err
		}
	}
	if needs.Supervisors {
		if audience.Supervisors, err = d.users.ListActiveIDsByRole(ctx, ports.RoleSupervisor); err != nil {
			return services.Audience{}, err
		}
	}
	return audience, nil
}
