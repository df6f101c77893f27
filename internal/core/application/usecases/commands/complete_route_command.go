package commands

import (
	"errors"

	"wasteflow/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand closes a route that is in progress.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	target RouteTarget
	guard  guard.ConstructorGuard
}

func NewCompleteRouteCommand(target RouteTarget) (CompleteRouteCommand, error) {
	if err := target.Validate(); err != nil {
		return CompleteRouteCommand{}, err
	}
	return CompleteRouteCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

func (c CompleteRouteCommand) Target() RouteTarget {
	return c.target
}
