package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrCompleteStopCommandIsNotConstructed = errors.New(
	"CompleteStopCommand must be created via NewCompleteStopCommand constructor",
)

type CompleteStopCommand struct { //nolint:recvcheck //using for validation
	stopID       kernel.UUID
	driverUserID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteStopCommand(stopID kernel.UUID, driverUserID kernel.UUID) (CompleteStopCommand, error) {
	if err := errors.Join(stopID.Validate(), driverUserID.Validate()); err != nil {
		return CompleteStopCommand{}, err
	}

	return CompleteStopCommand{
		stopID:       stopID,
		driverUserID: driverUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteStopCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStopCommandIsNotConstructed)
}

func (c CompleteStopCommand) StopID() kernel.UUID {
	return c.stopID
}

func (c CompleteStopCommand) DriverUserID() kernel.UUID {
	return c.driverUserID
}
