package commands

import (
	"context"
	"time"
)

type CancelRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCancelRouteCommandHandler(uowFactory RouteUoWFactory) CancelRouteCommandHandler {
	return CancelRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelRouteCommandHandler) Handle(ctx context.Context, cmd CancelRouteCommand) error {
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

	target := cmd.Target()
	rt, err := uow.RouteRepository().Get(ctx, *target.routeID)
	if err != nil {
		return err
	}
	if err = target.checkCompany(ctx, uow, rt); err != nil {
		return err
	}

	if err = rt.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
