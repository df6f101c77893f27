package commands

import (
	"context"
	"time"

	"wasteflow/internal/pkg/errs"
)

type UpdateVehicleLocationCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewUpdateVehicleLocationCommandHandler(uowFactory FleetUoWFactory) UpdateVehicleLocationCommandHandler {
	return UpdateVehicleLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateVehicleLocationCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleLocationCommand) error {
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

	driver, err := uow.CompanyRepository().GetDriverByUserID(ctx, cmd.DriverUserID())
	if err != nil {
		return err
	}
	vehicleID := driver.AssignedVehicleID()
	if vehicleID == nil {
		return errs.NewObjectNotFoundError("vehicleId", "driver has no assigned vehicle")
	}

	company, err := uow.CompanyRepository().GetByVehicle(ctx, *vehicleID)
	if err != nil {
		return err
	}
	vehicle, err := company.Vehicle(*vehicleID)
	if err != nil {
		return err
	}

	if err = vehicle.UpdateLocation(cmd.Location(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CompanyRepository().UpdateVehicleLocation(ctx, vehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
