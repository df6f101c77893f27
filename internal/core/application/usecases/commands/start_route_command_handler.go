package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/route"
)

// StartRouteCommandHandler starts a scheduled route and stamps its actual
// start time. A route in any other status is reported as not found.
type StartRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewStartRouteCommandHandler(uowFactory RouteUoWFactory) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the route it acted on, which callers addressing
// the route by driver do not know up front.
func (h StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rt, err := cmd.Target().load(ctx, uow, route.Scheduled)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = rt.Start(time.Now().UTC()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.RouteRepository().Update(ctx, rt); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return rt.ID(), nil
}
