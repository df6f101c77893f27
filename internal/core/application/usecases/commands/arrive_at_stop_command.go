package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrArriveAtStopCommandIsNotConstructed = errors.New(
	"ArriveAtStopCommand must be created via NewArriveAtStopCommand constructor",
)

type ArriveAtStopCommand struct { //nolint:recvcheck //using for validation
	stopID       kernel.UUID
	driverUserID kernel.UUID

	guard guard.ConstructorGuard
}

func NewArriveAtStopCommand(stopID kernel.UUID, driverUserID kernel.UUID) (ArriveAtStopCommand, error) {
	if err := errors.Join(stopID.Validate(), driverUserID.Validate()); err != nil {
		return ArriveAtStopCommand{}, err
	}

	return ArriveAtStopCommand{
		stopID:       stopID,
		driverUserID: driverUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ArriveAtStopCommand) Validate() error {
	return c.guard.Validate(ErrArriveAtStopCommandIsNotConstructed)
}

func (c ArriveAtStopCommand) StopID() kernel.UUID {
	return c.stopID
}

func (c ArriveAtStopCommand) DriverUserID() kernel.UUID {
	return c.driverUserID
}
