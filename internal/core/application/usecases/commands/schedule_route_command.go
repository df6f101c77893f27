package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrScheduleRouteCommandIsNotConstructed = errors.New(
	"ScheduleRouteCommand must be created via NewScheduleRouteCommand constructor",
)

// PlannedStop is one stop of a route being scheduled. RequestID links the
// stop to a collection request; the stop's resident is then taken from the
// request.
type PlannedStop struct {
	SequenceNumber int
	Address        string
	Location       kernel.Location
	ResidentID     *kernel.UUID
	RequestID      *kernel.UUID
}

// ScheduleRouteCommand plans a route for the company managed by
// companyUserID.
type ScheduleRouteCommand struct { //nolint:recvcheck //using for validation
	routeID            kernel.UUID
	companyUserID      kernel.UUID
	name               string
	zoneID             *kernel.UUID
	vehicleID          *kernel.UUID
	driverID           *kernel.UUID
	scheduledDate      time.Time
	scheduledStartTime time.Time
	stops              []PlannedStop

	guard guard.ConstructorGuard
}

func NewScheduleRouteCommand(
	routeID kernel.UUID,
	companyUserID kernel.UUID,
	name string,
	zoneID *kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
	scheduledDate time.Time,
	scheduledStartTime time.Time,
	stops []PlannedStop,
) (ScheduleRouteCommand, error) {
	cmd := ScheduleRouteCommand{
		zoneID:             zoneID,
		vehicleID:          vehicleID,
		driverID:           driverID,
		scheduledDate:      scheduledDate,
		scheduledStartTime: scheduledStartTime,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeID.Validate(),
		companyUserID.Validate(),
		cmd.setName(name),
		cmd.setStops(stops),
	); err != nil {
		return ScheduleRouteCommand{}, err
	}
	cmd.routeID = routeID
	cmd.companyUserID = companyUserID

	return cmd, nil
}

func (c ScheduleRouteCommand) Validate() error {
	return c.guard.Validate(ErrScheduleRouteCommandIsNotConstructed)
}

func (c ScheduleRouteCommand) RouteID() kernel.UUID          { return c.routeID }
func (c ScheduleRouteCommand) CompanyUserID() kernel.UUID    { return c.companyUserID }
func (c ScheduleRouteCommand) Name() string                  { return c.name }
func (c ScheduleRouteCommand) ZoneID() *kernel.UUID          { return c.zoneID }
func (c ScheduleRouteCommand) VehicleID() *kernel.UUID       { return c.vehicleID }
func (c ScheduleRouteCommand) DriverID() *kernel.UUID        { return c.driverID }
func (c ScheduleRouteCommand) ScheduledDate() time.Time      { return c.scheduledDate }
func (c ScheduleRouteCommand) ScheduledStartTime() time.Time { return c.scheduledStartTime }

func (c ScheduleRouteCommand) Stops() []PlannedStop {
	out := make([]PlannedStop, len(c.stops))
	copy(out, c.stops)
	return out
}

func (c *ScheduleRouteCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *ScheduleRouteCommand) setStops(stops []PlannedStop) error {
	if len(stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}
	for i, s := range stops {
		if err := s.Location.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("stop %d: %w", i+1, err))
		}
	}
	c.stops = stops
	return nil
}
