package routerepo

import (
	"time"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO keeps the stop counters as columns for list queries; on load
// they are recomputed from the stops.
type RouteDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(255);not null"`
	CompanyID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ZoneID             *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID          *uuid.UUID `gorm:"type:uuid;index"`
	DriverID           *uuid.UUID `gorm:"type:uuid;index"`
	Status             string     `gorm:"type:varchar(20);not null;index"`
	ScheduledDate      time.Time  `gorm:"type:date;not null"`
	ScheduledStartTime time.Time  `gorm:"not null"`
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	TotalStops         int       `gorm:"type:int;not null;default:0"`
	CompletedStops     int       `gorm:"type:int;not null;default:0"`
	TotalDistanceKm    float64   `gorm:"type:double precision;not null;default:0"`
	Stops              []StopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

type StopDTO struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	RouteID        uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_route_stops_sequence,priority:1"`
	SequenceNumber int                 `gorm:"type:int;not null;uniqueIndex:idx_route_stops_sequence,priority:2"`
	Address        string              `gorm:"type:text;not null"`
	Location       pgtypes.LocationDTO `gorm:"embedded"`
	ResidentID     *uuid.UUID          `gorm:"type:uuid"`
	RequestID      *uuid.UUID          `gorm:"type:uuid;index"`
	Status         string              `gorm:"type:varchar(20);not null"`
	ArrivalTime    *time.Time
	DepartureTime  *time.Time
	Notes          string `gorm:"type:text"`
}

func (StopDTO) TableName() string {
	return "route_stops"
}

func fromDomain(r *route.Route) RouteDTO {
	routeID := r.ID().Bytes()
	stops := make([]StopDTO, 0, r.TotalStops())
	for _, s := range r.Stops() {
		stops = append(stops, StopDTO{
			ID:             s.ID().Bytes(),
			RouteID:        routeID,
			SequenceNumber: s.SequenceNumber(),
			Address:        s.Address(),
			Location:       pgtypes.FromLocation(s.Location()),
			ResidentID:     pgtypes.FromUUIDPtr(s.ResidentID()),
			RequestID:      pgtypes.FromUUIDPtr(s.RequestID()),
			Status:         s.Status().String(),
			ArrivalTime:    s.ArrivalTime(),
			DepartureTime:  s.DepartureTime(),
			Notes:          s.Notes(),
		})
	}

	return RouteDTO{
		ID:                 routeID,
		Name:               r.Name(),
		CompanyID:          r.CompanyID().Bytes(),
		ZoneID:             pgtypes.FromUUIDPtr(r.ZoneID()),
		VehicleID:          pgtypes.FromUUIDPtr(r.VehicleID()),
		DriverID:           pgtypes.FromUUIDPtr(r.DriverID()),
		Status:             r.Status().String(),
		ScheduledDate:      r.ScheduledDate(),
		ScheduledStartTime: r.ScheduledStartTime(),
		ActualStartTime:    r.ActualStartTime(),
		ActualEndTime:      r.ActualEndTime(),
		TotalStops:         r.TotalStops(),
		CompletedStops:     r.CompletedStops(),
		TotalDistanceKm:    r.TotalDistanceKm(),
		Stops:              stops,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := pgtypes.ToUUID(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	zoneID, err := pgtypes.ToUUIDPtr(dto.ZoneID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := pgtypes.ToUUIDPtr(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := pgtypes.ToUUIDPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}
	status, err := route.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, s := range dto.Stops {
		stop, err := stopToDomain(s)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(
		id,
		dto.Name,
		companyID,
		zoneID,
		vehicleID,
		driverID,
		status,
		dto.ScheduledDate,
		dto.ScheduledStartTime,
		dto.ActualStartTime,
		dto.ActualEndTime,
		dto.TotalDistanceKm,
		stops,
	)
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	loc, err := dto.Location.ToDomain()
	if err != nil {
		return nil, err
	}
	residentID, err := pgtypes.ToUUIDPtr(dto.ResidentID)
	if err != nil {
		return nil, err
	}
	requestID, err := pgtypes.ToUUIDPtr(dto.RequestID)
	if err != nil {
		return nil, err
	}
	status, err := route.ParseStopStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return route.RestoreStop(
		id,
		dto.SequenceNumber,
		dto.Address,
		loc,
		residentID,
		requestID,
		status,
		dto.ArrivalTime,
		dto.DepartureTime,
		dto.Notes,
	)
}
