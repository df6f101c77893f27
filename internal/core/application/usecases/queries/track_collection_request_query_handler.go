package queries

import (
	"context"
	"time"

	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackCollectionRequestQueryHandler struct {
	db *gorm.DB
}

func NewTrackCollectionRequestQueryHandler(db *gorm.DB) TrackCollectionRequestQueryHandler {
	return TrackCollectionRequestQueryHandler{db: db}
}

// Handle reports a request of another resident as not found.
func (h TrackCollectionRequestQueryHandler) Handle(
	ctx context.Context,
	query TrackCollectionRequestQuery,
) (TrackCollectionRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCollectionRequestQueryResponse{}, err
	}

	var row struct {
		Status           string
		EstimatedArrival *time.Time
		CollectedAt      *time.Time
		PlateNumber      *string
		LastLatitude     *float64
		LastLongitude    *float64
		LastLocationAt   *time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			r.status,
			r.estimated_arrival,
			r.collected_at,
			v.plate_number,
			v.last_latitude,
			v.last_longitude,
			v.last_location_at
		FROM collection_requests r
		LEFT JOIN vehicles v ON v.id = r.assigned_vehicle_id
		WHERE r.id = ? AND r.resident_id = ?
	`, query.requestID.Bytes(), query.residentID.Bytes()).Scan(&row)
	if result.Error != nil {
		return TrackCollectionRequestQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackCollectionRequestQueryResponse{},
			errs.NewObjectNotFoundError("collectionRequestId", query.requestID.String())
	}

	resp := TrackCollectionRequestQueryResponse{
		Status:           row.Status,
		StatusDisplay:    statusDisplay(row.Status),
		EstimatedArrival: row.EstimatedArrival,
		CollectedAt:      row.CollectedAt,
		VehicleLatitude:  row.LastLatitude,
		VehicleLongitude: row.LastLongitude,
		VehicleSeenAt:    row.LastLocationAt,
	}
	if row.PlateNumber != nil {
		resp.VehiclePlate = *row.PlateNumber
	}
	return resp, nil
}
