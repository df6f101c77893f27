package commands

import (
	"context"
	"time"

	"wasteflow/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler is idempotent: a notification that is
// already read keeps its original read time. Other users' notifications are
// reported as not found.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.NotificationRepository().Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if !n.IsAddressedTo(cmd.UserID()) {
		return errs.NewObjectNotFoundError("notificationId", cmd.NotificationID().String())
	}

	if !n.MarkRead(time.Now().UTC()) {
		return nil
	}

	if err = uow.NotificationRepository().Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
