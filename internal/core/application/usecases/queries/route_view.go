package queries

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RouteView struct {
	ID                 kernel.UUID
	Name               string
	CompanyID          kernel.UUID
	VehicleID          *kernel.UUID
	DriverID           *kernel.UUID
	Status             string
	ScheduledDate      time.Time
	ScheduledStartTime time.Time
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	TotalStops         int
	CompletedStops     int
	TotalDistanceKm    float64
	Stops              []StopView
}

type StopView struct {
	ID             kernel.UUID
	RouteID        kernel.UUID
	SequenceNumber int
	Address        string
	Latitude       float64
	Longitude      float64
	ResidentID     *kernel.UUID
	RequestID      *kernel.UUID
	Status         string
	ArrivalTime    *time.Time
	DepartureTime  *time.Time
	Notes          string
}

type routeRow struct {
	ID                 uuid.UUID
	Name               string
	CompanyID          uuid.UUID
	VehicleID          *uuid.UUID
	DriverID           *uuid.UUID
	Status             string
	ScheduledDate      time.Time
	ScheduledStartTime time.Time
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	TotalStops         int
	CompletedStops     int
	TotalDistanceKm    float64
}

func (r routeRow) toView() RouteView {
	return RouteView{
		ID:                 kernel.UUIDFromGoogle(r.ID),
		Name:               r.Name,
		CompanyID:          kernel.UUIDFromGoogle(r.CompanyID),
		VehicleID:          optionalUUID(r.VehicleID),
		DriverID:           optionalUUID(r.DriverID),
		Status:             r.Status,
		ScheduledDate:      r.ScheduledDate,
		ScheduledStartTime: r.ScheduledStartTime,
		ActualStartTime:    r.ActualStartTime,
		ActualEndTime:      r.ActualEndTime,
		TotalStops:         r.TotalStops,
		CompletedStops:     r.CompletedStops,
		TotalDistanceKm:    r.TotalDistanceKm,
	}
}

type stopRow struct {
	ID             uuid.UUID
	RouteID        uuid.UUID
	SequenceNumber int
	Address        string
	Latitude       float64
	Longitude      float64
	ResidentID     *uuid.UUID
	RequestID      *uuid.UUID
	Status         string
	ArrivalTime    *time.Time
	DepartureTime  *time.Time
	Notes          string
}

func loadStops(ctx context.Context, db *gorm.DB, routeID uuid.UUID) ([]StopView, error) {
	var rows []stopRow
	err := db.WithContext(ctx).
		Raw(selectStops+` WHERE route_id = ? ORDER BY sequence_number`, routeID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stops := make([]StopView, 0, len(rows))
	for _, r := range rows {
		stops = append(stops, r.toView())
	}
	return stops, nil
}

const selectStops = `
	SELECT
		id, route_id, sequence_number, address, latitude, longitude, resident_id,
		request_id, status, arrival_time, departure_time, notes
	FROM route_stops`

func (r stopRow) toView() StopView {
	return StopView{
		ID:             kernel.UUIDFromGoogle(r.ID),
		RouteID:        kernel.UUIDFromGoogle(r.RouteID),
		SequenceNumber: r.SequenceNumber,
		Address:        r.Address,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		ResidentID:     optionalUUID(r.ResidentID),
		RequestID:      optionalUUID(r.RequestID),
		Status:         r.Status,
		ArrivalTime:    r.ArrivalTime,
		DepartureTime:  r.DepartureTime,
		Notes:          r.Notes,
	}
}

const selectRoutes = `
	SELECT
		r.id, r.name, r.company_id, r.vehicle_id, r.driver_id, r.status,
		r.scheduled_date, r.scheduled_start_time, r.actual_start_time,
		r.actual_end_time, r.total_stops, r.completed_stops, r.total_distance_km
	FROM routes r`

// withStops loads the stops of every route in views.
func withStops(ctx context.Context, db *gorm.DB, views []RouteView) error {
	for i := range views {
		stops, err := loadStops(ctx, db, views[i].ID.Bytes())
		if err != nil {
			return err
		}
		views[i].Stops = stops
	}
	return nil
}
