package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/route"
)

// CompleteRouteCommandHandler closes a route in progress. Open stops are
// left as they are.
type CompleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCompleteRouteCommandHandler(uowFactory RouteUoWFactory) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the route it acted on, which callers addressing
// the route by driver do not know up front.
func (h CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) (kernel.UUID, error) {
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

	rt, err := cmd.Target().load(ctx, uow, route.InProgress)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = rt.Complete(time.Now().UTC()); err != nil {
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
