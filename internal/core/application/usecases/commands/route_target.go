package commands

import (
	"context"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/route"
	"wasteflow/internal/pkg/errs"
)

// RouteTarget names the route a lifecycle command acts on: either by id,
// on behalf of the owning company's user, or as the earliest route of a
// driver.
type RouteTarget struct {
	routeID       *kernel.UUID
	companyUserID *kernel.UUID
	driverUserID  *kernel.UUID
}

func RouteByID(routeID kernel.UUID, companyUserID kernel.UUID) RouteTarget {
	return RouteTarget{routeID: &routeID, companyUserID: &companyUserID}
}

func RouteOfDriver(driverUserID kernel.UUID) RouteTarget {
	return RouteTarget{driverUserID: &driverUserID}
}

func (t RouteTarget) Validate() error {
	switch {
	case t.routeID != nil && t.companyUserID != nil:
		if err := t.routeID.Validate(); err != nil {
			return err
		}
		return t.companyUserID.Validate()
	case t.driverUserID != nil:
		return t.driverUserID.Validate()
	default:
		return errs.NewValueIsRequiredError("route")
	}
}

// load returns the targeted route in status. A route of another company,
// or one in a different status, is reported as not found.
func (t RouteTarget) load(ctx context.Context, uow RouteUoW, status route.Status) (*route.Route, error) {
	if t.driverUserID != nil {
		driver, err := uow.CompanyRepository().GetDriverByUserID(ctx, *t.driverUserID)
		if err != nil {
			return nil, err
		}
		return uow.RouteRepository().GetFirstForDriver(ctx, driver.ID(), status)
	}

	rt, err := uow.RouteRepository().GetInStatus(ctx, *t.routeID, status)
	if err != nil {
		return nil, err
	}
	if err := t.checkCompany(ctx, uow, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (t RouteTarget) checkCompany(ctx context.Context, uow RouteUoW, rt *route.Route) error {
	company, err := uow.CompanyRepository().GetByOwner(ctx, *t.companyUserID)
	if err != nil {
		return err
	}
	if !company.ID().IsEqual(rt.CompanyID()) {
		return errs.NewObjectNotFoundError("routeId", rt.ID().String())
	}
	return nil
}
