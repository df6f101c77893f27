package services

import (
	"errors"
	"math"
	"strings"

	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
)

// ErrNoEligibleAssignee is returned when no approved company serving the
// request's zone has an active vehicle with an on-duty driver.
var ErrNoEligibleAssignee = errors.New("no eligible assignee")

// VehicleLoad counts the assigned and in-progress requests per vehicle.
// Vehicles missing from the map carry no load.
type VehicleLoad map[kernel.UUID]int

// AssignmentPolicy picks a company, vehicle and driver for a pending
// request. Implementations must be deterministic for equal inputs.
type AssignmentPolicy interface {
	Select(req *request.CollectionRequest, companies []*fleet.Company, load VehicleLoad) (request.Assignment, error)
}

// ZoneLoadAssignmentPolicy balances work across the vehicles of the
// companies serving the request's zone.
//
// Selection rules:
//   - only approved companies that serve the zone (all approved companies
//     when the request has no zone)
//   - only active vehicles with an on-duty driver bound to them
//   - lowest load first, then shortest distance from the vehicle's last
//     known location to the request (unknown distance ranks last), then id
type ZoneLoadAssignmentPolicy struct{}

func NewZoneLoadAssignmentPolicy() ZoneLoadAssignmentPolicy {
	return ZoneLoadAssignmentPolicy{}
}

type candidate struct {
	company  *fleet.Company
	vehicle  *fleet.Vehicle
	driver   *fleet.Driver
	load     int
	distance float64
}

func (c candidate) betterThan(other candidate) bool {
	if c.load != other.load {
		return c.load < other.load
	}
	if c.distance != other.distance {
		return c.distance < other.distance
	}
	return strings.Compare(c.vehicle.ID().String(), other.vehicle.ID().String()) < 0
}

func (p ZoneLoadAssignmentPolicy) Select(
	req *request.CollectionRequest,
	companies []*fleet.Company,
	load VehicleLoad,
) (request.Assignment, error) {
	if err := req.Validate(); err != nil {
		return request.Assignment{}, err
	}

	var (
		best  candidate
		found bool
	)

	for _, c := range companies {
		if err := c.Validate(); err != nil {
			return request.Assignment{}, err
		}
		if !c.IsApproved() || !c.ServesZone(req.ZoneID()) {
			continue
		}

		for _, v := range c.Vehicles() {
			if !v.IsActive() {
				continue
			}
			d := c.DriverFor(v.ID())
			if d == nil || !d.IsOnDuty() {
				continue
			}

			cand := candidate{
				company:  c,
				vehicle:  v,
				driver:   d,
				load:     load[v.ID()],
				distance: distanceToRequest(v, req),
			}
			if !found || cand.betterThan(best) {
				best = cand
				found = true
			}
		}
	}

	if !found {
		return request.Assignment{}, ErrNoEligibleAssignee
	}

	vehicleID := best.vehicle.ID()
	driverID := best.driver.ID()
	return request.NewAssignment(best.company.ID(), &vehicleID, &driverID)
}

func distanceToRequest(v *fleet.Vehicle, req *request.CollectionRequest) float64 {
	loc := req.Details().Location()
	if loc == nil {
		return math.MaxFloat64
	}
	d, ok := v.DistanceTo(*loc)
	if !ok {
		return math.MaxFloat64
	}
	return d
}
