package queries

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CollectionReceipt struct {
	RecordID          kernel.UUID
	RequestID         kernel.UUID
	CompanyName       string
	VehiclePlate      string
	Address           string
	WasteType         string
	QuantityBags      int
	EstimatedWeightKg *decimal.Decimal
	ActualWeightKg    *decimal.Decimal
	CollectedAt       time.Time
	DriverNotes       string
	Rating            *int
}

type GetCollectionReceiptQueryHandler struct {
	db *gorm.DB
}

func NewGetCollectionReceiptQueryHandler(db *gorm.DB) GetCollectionReceiptQueryHandler {
	return GetCollectionReceiptQueryHandler{db: db}
}

// Handle reports requests without a record, or assigned to another
// company, as not found.
func (h GetCollectionReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionReceiptQuery,
) (CollectionReceipt, error) {
	if err := query.Validate(); err != nil {
		return CollectionReceipt{}, err
	}

	var row struct {
		RecordID          uuid.UUID
		RequestID         uuid.UUID
		CompanyName       string
		PlateNumber       *string
		Address           string
		WasteType         string
		QuantityBags      int
		EstimatedWeightKg decimal.NullDecimal
		ActualWeightKg    decimal.NullDecimal
		CollectedAt       time.Time
		DriverNotes       string
		Rating            *int
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			rec.id AS record_id, cr.id AS request_id, c.name AS company_name,
			v.plate_number, cr.address, cr.waste_type, cr.quantity_bags,
			cr.estimated_weight_kg, rec.actual_weight_kg, rec.collected_at,
			rec.driver_notes, rec.rating
		FROM collection_records rec
		JOIN collection_requests cr ON cr.id = rec.collection_request_id
		JOIN companies c ON c.id = cr.assigned_company_id
		LEFT JOIN vehicles v ON v.id = COALESCE(rec.vehicle_id, cr.assigned_vehicle_id)
		WHERE cr.id = ? AND c.owner_user_id = ?
	`, query.requestID.Bytes(), query.companyUserID.Bytes()).Scan(&row)
	if result.Error != nil {
		return CollectionReceipt{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CollectionReceipt{}, errs.NewObjectNotFoundError("collectionRequestId", query.requestID.String())
	}

	receipt := CollectionReceipt{
		RecordID:     kernel.UUIDFromGoogle(row.RecordID),
		RequestID:    kernel.UUIDFromGoogle(row.RequestID),
		CompanyName:  row.CompanyName,
		Address:      row.Address,
		WasteType:    row.WasteType,
		QuantityBags: row.QuantityBags,
		CollectedAt:  row.CollectedAt,
		DriverNotes:  row.DriverNotes,
		Rating:       row.Rating,
	}
	if row.PlateNumber != nil {
		receipt.VehiclePlate = *row.PlateNumber
	}
	if row.EstimatedWeightKg.Valid {
		receipt.EstimatedWeightKg = &row.EstimatedWeightKg.Decimal
	}
	if row.ActualWeightKg.Valid {
		receipt.ActualWeightKg = &row.ActualWeightKg.Decimal
	}
	return receipt, nil
}
