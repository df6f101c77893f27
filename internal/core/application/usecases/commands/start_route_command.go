package commands

import (
	"errors"

	"wasteflow/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand starts a scheduled route.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	target RouteTarget
	guard  guard.ConstructorGuard
}

func NewStartRouteCommand(target RouteTarget) (StartRouteCommand, error) {
	if err := target.Validate(); err != nil {
		return StartRouteCommand{}, err
	}
	return StartRouteCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

func (c StartRouteCommand) Target() RouteTarget {
	return c.target
}
