package services

import (
	"time"

	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"
)

// RequestDispatcher assigns collection requests, either through an
// AssignmentPolicy or to a vehicle chosen by the company.
//
// Example usage:
//
//	dispatcher := services.NewRequestDispatcher(services.NewZoneLoadAssignmentPolicy())
//	a, err := dispatcher.Dispatch(req, companies, load, time.Now())
//	if errors.Is(err, services.ErrNoEligibleAssignee) {
//	    // leave the request pending
//	}
type RequestDispatcher struct {
	policy AssignmentPolicy
}

func NewRequestDispatcher(policy AssignmentPolicy) RequestDispatcher {
	return RequestDispatcher{policy: policy}
}

// Dispatch selects an assignee with the policy and assigns the request.
func (d RequestDispatcher) Dispatch(
	req *request.CollectionRequest,
	companies []*fleet.Company,
	load VehicleLoad,
	at time.Time,
) (request.Assignment, error) {
	if err := req.Validate(); err != nil {
		return request.Assignment{}, err
	}
	if _, err := req.Status().Assign(); err != nil {
		return request.Assignment{}, err
	}

	a, err := d.policy.Select(req, companies, load)
	if err != nil {
		return request.Assignment{}, err
	}

	if err := req.Assign(a, at); err != nil {
		return request.Assignment{}, err
	}
	return a, nil
}

// AssignTo assigns the request to vehicleID of company. When driverID is
// nil the driver bound to the vehicle is used, if any.
func (d RequestDispatcher) AssignTo(
	req *request.CollectionRequest,
	company *fleet.Company,
	vehicleID kernel.UUID,
	driverID *kernel.UUID,
	at time.Time,
) (request.Assignment, error) {
	if err := req.Validate(); err != nil {
		return request.Assignment{}, err
	}
	if err := vehicleID.Validate(); err != nil {
		return request.Assignment{}, errs.NewValueIsRequiredErrorWithCause("vehicle_id", err)
	}

	vehicle, err := company.Vehicle(vehicleID)
	if err != nil {
		return request.Assignment{}, err
	}

	switch {
	case driverID == nil:
		if drv := company.DriverFor(vehicle.ID()); drv != nil {
			id := drv.ID()
			driverID = &id
		}
	case !employs(company, *driverID):
		return request.Assignment{}, errs.NewObjectNotFoundError("driverId", *driverID)
	}

	vid := vehicle.ID()
	a, err := request.NewAssignment(company.ID(), &vid, driverID)
	if err != nil {
		return request.Assignment{}, err
	}

	if err := req.Assign(a, at); err != nil {
		return request.Assignment{}, err
	}
	return a, nil
}

func employs(company *fleet.Company, driverID kernel.UUID) bool {
	for _, drv := range company.Drivers() {
		if drv.ID().IsEqual(driverID) {
			return true
		}
	}
	return false
}
