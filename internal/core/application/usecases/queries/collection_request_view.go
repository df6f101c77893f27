package queries

import (
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollectionRequestView is the list representation of a request.
type CollectionRequestView struct {
	ID                  kernel.UUID
	ResidentID          kernel.UUID
	ZoneID              *kernel.UUID
	WasteType           string
	QuantityBags        int
	EstimatedWeightKg   *decimal.Decimal
	PreferredDate       time.Time
	PreferredTime       string
	Address             string
	Latitude            *float64
	Longitude           *float64
	SpecialInstructions string
	Status              string
	StatusDisplay       string
	AssignedCompanyID   *kernel.UUID
	AssignedVehicleID   *kernel.UUID
	AssignedDriverID    *kernel.UUID
	EstimatedArrival    *time.Time
	CollectedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

const selectCollectionRequests = `
	SELECT
		id, resident_id, zone_id, waste_type, quantity_bags, estimated_weight_kg,
		preferred_date, preferred_time, address, latitude, longitude,
		special_instructions, status, assigned_company_id, assigned_vehicle_id,
		assigned_driver_id, estimated_arrival, collected_at, created_at, updated_at
	FROM collection_requests`

type collectionRequestRow struct {
	ID                  uuid.UUID
	ResidentID          uuid.UUID
	ZoneID              *uuid.UUID
	WasteType           string
	QuantityBags        int
	EstimatedWeightKg   decimal.NullDecimal
	PreferredDate       time.Time
	PreferredTime       string
	Address             string
	Latitude            *float64
	Longitude           *float64
	SpecialInstructions string
	Status              string
	AssignedCompanyID   *uuid.UUID
	AssignedVehicleID   *uuid.UUID
	AssignedDriverID    *uuid.UUID
	EstimatedArrival    *time.Time
	CollectedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (r collectionRequestRow) toView() CollectionRequestView {
	v := CollectionRequestView{
		ID:                  kernel.UUIDFromGoogle(r.ID),
		ResidentID:          kernel.UUIDFromGoogle(r.ResidentID),
		ZoneID:              optionalUUID(r.ZoneID),
		WasteType:           r.WasteType,
		QuantityBags:        r.QuantityBags,
		PreferredDate:       r.PreferredDate,
		PreferredTime:       r.PreferredTime,
		Address:             r.Address,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		SpecialInstructions: r.SpecialInstructions,
		Status:              r.Status,
		StatusDisplay:       statusDisplay(r.Status),
		AssignedCompanyID:   optionalUUID(r.AssignedCompanyID),
		AssignedVehicleID:   optionalUUID(r.AssignedVehicleID),
		AssignedDriverID:    optionalUUID(r.AssignedDriverID),
		EstimatedArrival:    r.EstimatedArrival,
		CollectedAt:         r.CollectedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if r.EstimatedWeightKg.Valid {
		w := r.EstimatedWeightKg.Decimal
		v.EstimatedWeightKg = &w
	}
	return v
}

func toCollectionRequestViews(rows []collectionRequestRow) []CollectionRequestView {
	views := make([]CollectionRequestView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.toView())
	}
	return views
}

func statusDisplay(slug string) string {
	s, err := request.ParseStatus(slug)
	if err != nil {
		return slug
	}
	return s.Display()
}

func optionalUUID(id *uuid.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := kernel.UUIDFromGoogle(*id)
	return &v
}
