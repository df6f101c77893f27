package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrUpdateVehicleLocationCommandIsNotConstructed = errors.New(
	"UpdateVehicleLocationCommand must be created via NewUpdateVehicleLocationCommand constructor",
)

// UpdateVehicleLocationCommand reports the position of the vehicle the
// driver is bound to.
type UpdateVehicleLocationCommand struct { //nolint:recvcheck //using for validation
	driverUserID kernel.UUID
	location     kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateVehicleLocationCommand(driverUserID kernel.UUID, location kernel.Location) (UpdateVehicleLocationCommand, error) {
	if err := errors.Join(driverUserID.Validate(), location.Validate()); err != nil {
		return UpdateVehicleLocationCommand{}, err
	}

	return UpdateVehicleLocationCommand{
		driverUserID: driverUserID,
		location:     location,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateVehicleLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleLocationCommandIsNotConstructed)
}

func (c UpdateVehicleLocationCommand) DriverUserID() kernel.UUID {
	return c.driverUserID
}

func (c UpdateVehicleLocationCommand) Location() kernel.Location {
	return c.location
}
