package commands

import (
	"context"

	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/route"
	"wasteflow/internal/pkg/errs"
)

// ScheduleRouteCommandHandler creates a scheduled route with its stops. The
// vehicle and driver, when given, must belong to the caller's company; a
// missing driver defaults to the one bound to the vehicle.
type ScheduleRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewScheduleRouteCommandHandler(uowFactory RouteUoWFactory) ScheduleRouteCommandHandler {
	return ScheduleRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ScheduleRouteCommandHandler) Handle(ctx context.Context, cmd ScheduleRouteCommand) error {
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

	company, err := uow.CompanyRepository().GetByOwner(ctx, cmd.CompanyUserID())
	if err != nil {
		return err
	}
	if !company.IsApproved() {
		return errs.NewPermissionDeniedError("schedule routes")
	}

	vehicleID, driverID, err := resolveCrew(company, cmd.VehicleID(), cmd.DriverID())
	if err != nil {
		return err
	}

	stops, err := h.buildStops(ctx, uow, cmd.Stops())
	if err != nil {
		return err
	}

	rt, err := route.NewRoute(
		cmd.RouteID(),
		cmd.Name(),
		company.ID(),
		cmd.ZoneID(),
		vehicleID,
		driverID,
		cmd.ScheduledDate(),
		cmd.ScheduledStartTime(),
		stops,
	)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, rt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ScheduleRouteCommandHandler) buildStops(ctx context.Context, uow RouteUoW, planned []PlannedStop) ([]*route.Stop, error) {
	stops := make([]*route.Stop, 0, len(planned))
	for _, p := range planned {
		residentID := p.ResidentID
		if p.RequestID != nil {
			req, err := uow.CollectionRequestRepository().Get(ctx, *p.RequestID)
			if err != nil {
				return nil, err
			}
			id := req.ResidentID()
			residentID = &id
		}

		stop, err := route.NewStop(kernel.NewUUID(), p.SequenceNumber, p.Address, p.Location, residentID, p.RequestID)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

func resolveCrew(company *fleet.Company, vehicleID, driverID *kernel.UUID) (*kernel.UUID, *kernel.UUID, error) {
	if driverID != nil {
		found := false
		for _, d := range company.Drivers() {
			if d.ID().IsEqual(*driverID) {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, errs.NewObjectNotFoundError("driverId", driverID.String())
		}
	}

	if vehicleID == nil {
		return nil, driverID, nil
	}

	vehicle, err := company.Vehicle(*vehicleID)
	if err != nil {
		return nil, nil, err
	}
	if driverID == nil {
		if d := company.DriverFor(vehicle.ID()); d != nil {
			id := d.ID()
			driverID = &id
		}
	}
	return vehicleID, driverID, nil
}
