package route

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var (
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	ErrStopsAreRequired      = errs.NewValueIsRequiredError("stops")
)

// Route is the aggregate root for a crew's planned day: an ordered list of
// stops served by one vehicle and driver.
//
// Invariants:
//   - sequence numbers are unique and at least 1; Stops returns them in order
//   - route status only moves scheduled -> in_progress -> completed, or to cancelled
//   - completedStops always equals the number of stops in StopCompleted
//   - stop operations do not look at the route status
type Route struct {
	id        kernel.UUID
	name      string
	companyID kernel.UUID
	zoneID    *kernel.UUID
	vehicleID *kernel.UUID
	driverID  *kernel.UUID

	status             Status
	scheduledDate      time.Time
	scheduledStartTime time.Time
	actualStartTime    *time.Time
	actualEndTime      *time.Time
	totalDistanceKm    float64

	stops []*Stop
	guard guard.ConstructorGuard
}

// NewRoute plans a scheduled route. The total distance is the straight-line
// length of the path through the stops in sequence order.
func NewRoute(
	id kernel.UUID,
	name string,
	companyID kernel.UUID,
	zoneID *kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
	scheduledDate time.Time,
	scheduledStartTime time.Time,
	stops []*Stop,
) (*Route, error) {
	r := &Route{
		zoneID:             zoneID,
		vehicleID:          vehicleID,
		driverID:           driverID,
		status:             Scheduled,
		scheduledStartTime: scheduledStartTime,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCompanyID(companyID),
		r.setScheduledDate(scheduledDate),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	r.totalDistanceKm = pathLengthKm(r.stops)
	return r, nil
}

func RestoreRoute(
	id kernel.UUID,
	name string,
	companyID kernel.UUID,
	zoneID *kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	scheduledDate time.Time,
	scheduledStartTime time.Time,
	actualStartTime *time.Time,
	actualEndTime *time.Time,
	totalDistanceKm float64,
	stops []*Stop,
) (*Route, error) {
	r := &Route{
		zoneID:             zoneID,
		vehicleID:          vehicleID,
		driverID:           driverID,
		scheduledDate:      scheduledDate,
		scheduledStartTime: scheduledStartTime,
		actualStartTime:    actualStartTime,
		actualEndTime:      actualEndTime,
		totalDistanceKm:    totalDistanceKm,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCompanyID(companyID),
		r.setStatus(status),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Route) ID() kernel.UUID               { return r.id }
func (r *Route) Name() string                  { return r.name }
func (r *Route) CompanyID() kernel.UUID        { return r.companyID }
func (r *Route) ZoneID() *kernel.UUID          { return r.zoneID }
func (r *Route) VehicleID() *kernel.UUID       { return r.vehicleID }
func (r *Route) DriverID() *kernel.UUID        { return r.driverID }
func (r *Route) Status() Status                { return r.status }
func (r *Route) ScheduledDate() time.Time      { return r.scheduledDate }
func (r *Route) ScheduledStartTime() time.Time { return r.scheduledStartTime }
func (r *Route) ActualStartTime() *time.Time   { return r.actualStartTime }
func (r *Route) ActualEndTime() *time.Time     { return r.actualEndTime }
func (r *Route) TotalDistanceKm() float64      { return r.totalDistanceKm }

// Stops returns the stops ordered by sequence number.
func (r *Route) Stops() []*Stop {
	return slices.Clone(r.stops)
}

func (r *Route) TotalStops() int {
	return len(r.stops)
}

func (r *Route) CompletedStops() int {
	n := 0
	for _, s := range r.stops {
		if s.status == StopCompleted {
			n++
		}
	}
	return n
}

// Stop looks a stop up by id.
func (r *Route) Stop(stopID kernel.UUID) (*Stop, error) {
	for _, s := range r.stops {
		if s.id.IsEqual(stopID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stopId", stopID)
}

func (r *Route) Start(at time.Time) error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}
	r.status = newStatus
	r.actualStartTime = &at
	return nil
}

func (r *Route) Complete(at time.Time) error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}
	r.status = newStatus
	r.actualEndTime = &at
	return nil
}

func (r *Route) Cancel(at time.Time) error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = newStatus
	if r.actualStartTime != nil {
		r.actualEndTime = &at
	}
	return nil
}

func (r *Route) ArriveAtStop(stopID kernel.UUID, at time.Time) (*Stop, error) {
	s, err := r.Stop(stopID)
	if err != nil {
		return nil, err
	}
	if err := s.arrive(at); err != nil {
		return nil, err
	}
	return s, nil
}

// CompleteStop marks the stop done and stamps its departure. Completing a
// completed stop re-stamps the departure time. With strictOrder set, every
// stop with a lower sequence number must be completed or skipped first.
func (r *Route) CompleteStop(stopID kernel.UUID, at time.Time, strictOrder bool) (*Stop, error) {
	s, err := r.Stop(stopID)
	if err != nil {
		return nil, err
	}
	if strictOrder {
		if err := r.checkPredecessorsClosed(s); err != nil {
			return nil, err
		}
	}
	if err := s.complete(at); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Route) SkipStop(stopID kernel.UUID, notes string, at time.Time) (*Stop, error) {
	s, err := r.Stop(stopID)
	if err != nil {
		return nil, err
	}
	if err := s.skip(notes, at); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Route) checkPredecessorsClosed(target *Stop) error {
	for _, s := range r.stops {
		if s.sequenceNumber >= target.sequenceNumber {
			break
		}
		if s.status.IsOpen() {
			return errs.NewTransitionRejectedErrorWithCause("route stop", target.status.String(),
				StopCompleted.String(), fmt.Errorf("stop %d is still %s", s.sequenceNumber, s.status))
		}
	}
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Route) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	r.companyID = id
	return nil
}

func (r *Route) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduled_date")
	}
	r.scheduledDate = date
	return nil
}

func (r *Route) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Route) setStops(stops []*Stop) error {
	if len(stops) == 0 {
		return ErrStopsAreRequired
	}

	seen := make(map[int]struct{}, len(stops))
	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := seen[s.sequenceNumber]; dup {
			return errs.NewValueIsInvalidErrorWithCause("stops",
				fmt.Errorf("sequence number %d is used twice", s.sequenceNumber))
		}
		seen[s.sequenceNumber] = struct{}{}
	}

	sorted := slices.Clone(stops)
	slices.SortFunc(sorted, func(a, b *Stop) int { return a.sequenceNumber - b.sequenceNumber })
	r.stops = sorted
	return nil
}

func pathLengthKm(stops []*Stop) float64 {
	var meters float64
	for i := 1; i < len(stops); i++ {
		d, err := stops[i-1].location.DistanceMeters(stops[i].location)
		if err != nil {
			continue
		}
		meters += d
	}
	return math.Round(meters/10) / 100
}
