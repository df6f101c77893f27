package commands

import (
	"errors"

	"wasteflow/internal/pkg/guard"
)

var ErrAssignPendingRequestCommandIsNotConstructed = errors.New(
	"AssignPendingRequestCommand must be created via NewAssignPendingRequestCommand constructor",
)

// AssignPendingRequestCommand asks the assignment policy to place the oldest
// pending request. It carries no parameters; the scheduler sends one per
// tick.
type AssignPendingRequestCommand struct {
	guard guard.ConstructorGuard
}

func NewAssignPendingRequestCommand() AssignPendingRequestCommand {
	return AssignPendingRequestCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *AssignPendingRequestCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingRequestCommandIsNotConstructed)
}
