package commands

import (
	"context"
	"time"
)

// CompleteStopCommandHandler closes a stop and completes the request linked
// to it. With strictOrder set, lower sequence stops must be closed first.
type CompleteStopCommandHandler struct {
	uowFactory  RouteUoWFactory
	strictOrder bool
}

func NewCompleteStopCommandHandler(uowFactory RouteUoWFactory, strictOrder bool) CompleteStopCommandHandler {
	return CompleteStopCommandHandler{
		uowFactory:  uowFactory,
		strictOrder: strictOrder,
	}
}

func (h CompleteStopCommandHandler) Handle(ctx context.Context, cmd CompleteStopCommand) error {
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

	rt, err := loadDriverStopRoute(ctx, uow, cmd.StopID(), cmd.DriverUserID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	stop, err := rt.CompleteStop(cmd.StopID(), now, h.strictOrder)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rt); err != nil {
		return err
	}

	if err = completeLinkedRequest(ctx, uow, stop, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
