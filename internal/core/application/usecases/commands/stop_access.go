package commands

import (
	"context"
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/domain/model/route"
	"wasteflow/internal/pkg/errs"
)

// loadDriverStopRoute returns the route owning stopID when the driver may
// work it: the route belongs to the driver's company and, if the route has
// a driver, it is this one. Anything else is reported as an unknown stop.
func loadDriverStopRoute(ctx context.Context, uow RouteUoW, stopID, driverUserID kernel.UUID) (*route.Route, error) {
	driver, err := uow.CompanyRepository().GetDriverByUserID(ctx, driverUserID)
	if err != nil {
		return nil, err
	}

	rt, err := uow.RouteRepository().GetByStopID(ctx, stopID)
	if err != nil {
		return nil, err
	}

	if !rt.CompanyID().IsEqual(driver.CompanyID()) ||
		(rt.DriverID() != nil && !rt.DriverID().IsEqual(driver.ID())) {
		return nil, errs.NewObjectNotFoundError("stopId", stopID.String())
	}
	return rt, nil
}

// startLinkedRequest moves the request behind a stop to in progress. A
// request that refuses the transition is left alone.
func startLinkedRequest(ctx context.Context, uow RouteUoW, stop *route.Stop, at time.Time) error {
	if stop.RequestID() == nil {
		return nil
	}
	req, err := uow.CollectionRequestRepository().Get(ctx, *stop.RequestID())
	if err != nil {
		return err
	}
	if req.Status() != request.Assigned {
		return nil
	}
	if err := req.Start(at); err != nil {
		if errors.Is(err, errs.ErrTransitionRejected) {
			return nil
		}
		return err
	}
	return uow.CollectionRequestRepository().Update(ctx, req)
}

// completeLinkedRequest completes the request behind a stop when it is
// still active.
func completeLinkedRequest(ctx context.Context, uow RouteUoW, stop *route.Stop, at time.Time) error {
	if stop.RequestID() == nil {
		return nil
	}
	req, err := uow.CollectionRequestRepository().Get(ctx, *stop.RequestID())
	if err != nil {
		return err
	}
	if !req.Status().IsActive() {
		return nil
	}
	return completeRequest(ctx, uow, req, at)
}
