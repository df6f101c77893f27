package commands

import (
	"errors"

	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrCancelRouteCommandIsNotConstructed = errors.New(
	"CancelRouteCommand must be created via NewCancelRouteCommand constructor",
)

// CancelRouteCommand cancels a scheduled or running route. Cancelling by
// driver is not supported; drivers report problems through skipped stops.
type CancelRouteCommand struct { //nolint:recvcheck //using for validation
	target RouteTarget
	guard  guard.ConstructorGuard
}

func NewCancelRouteCommand(target RouteTarget) (CancelRouteCommand, error) {
	if err := target.Validate(); err != nil {
		return CancelRouteCommand{}, err
	}
	if target.routeID == nil {
		return CancelRouteCommand{}, errs.NewValueIsRequiredError("route_id")
	}
	return CancelRouteCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CancelRouteCommand) Validate() error {
	return c.guard.Validate(ErrCancelRouteCommandIsNotConstructed)
}

func (c CancelRouteCommand) Target() RouteTarget {
	return c.target
}
