package commands

import (
	"context"
	"time"
)

// ArriveAtStopCommandHandler records the crew's arrival at a stop. The
// route's own status is not checked. A linked request still waiting for
// the crew moves to in progress.
type ArriveAtStopCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewArriveAtStopCommandHandler(uowFactory RouteUoWFactory) ArriveAtStopCommandHandler {
	return ArriveAtStopCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ArriveAtStopCommandHandler) Handle(ctx context.Context, cmd ArriveAtStopCommand) error {
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
	stop, err := rt.ArriveAtStop(cmd.StopID(), now)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rt); err != nil {
		return err
	}

	if err = startLinkedRequest(ctx, uow, stop, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
