package commands

import (
	"context"
	"time"
)

type SkipStopCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewSkipStopCommandHandler(uowFactory RouteUoWFactory) SkipStopCommandHandler {
	return SkipStopCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SkipStopCommandHandler) Handle(ctx context.Context, cmd SkipStopCommand) error {
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

	if _, err = rt.SkipStop(cmd.StopID(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
