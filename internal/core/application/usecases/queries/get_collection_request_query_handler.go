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

type GetCollectionRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetCollectionRequestQueryHandler(db *gorm.DB) GetCollectionRequestQueryHandler {
	return GetCollectionRequestQueryHandler{db: db}
}

func (h GetCollectionRequestQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionRequestQuery,
) (CollectionRequestDetail, error) {
	if err := query.Validate(); err != nil {
		return CollectionRequestDetail{}, err
	}

	var row collectionRequestRow
	result := h.db.WithContext(ctx).
		Raw(selectCollectionRequests+` WHERE id = ?`, query.requestID.Bytes()).
		Scan(&row)
	if result.Error != nil {
		return CollectionRequestDetail{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CollectionRequestDetail{}, errs.NewObjectNotFoundError("collectionRequestId", query.requestID.String())
	}

	detail := CollectionRequestDetail{Request: row.toView()}
	record, err := h.loadRecord(ctx, row.ID)
	if err != nil {
		return CollectionRequestDetail{}, err
	}
	detail.Record = record
	return detail, nil
}

func (h GetCollectionRequestQueryHandler) loadRecord(ctx context.Context, requestID uuid.UUID) (*CollectionRecordView, error) {
	var row struct {
		ID                uuid.UUID
		VehicleID         *uuid.UUID
		DriverID          *uuid.UUID
		CollectedAt       time.Time
		ActualWeightKg    decimal.NullDecimal
		PhotoProofURL     string
		ResidentSignature string
		DriverNotes       string
		Rating            *int
		Feedback          string
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id, vehicle_id, driver_id, collected_at, actual_weight_kg,
			photo_proof_url, resident_signature, driver_notes, rating, feedback
		FROM collection_records
		WHERE collection_request_id = ?
	`, requestID).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	record := &CollectionRecordView{
		ID:                kernel.UUIDFromGoogle(row.ID),
		VehicleID:         optionalUUID(row.VehicleID),
		DriverID:          optionalUUID(row.DriverID),
		CollectedAt:       row.CollectedAt,
		PhotoProofURL:     row.PhotoProofURL,
		ResidentSignature: row.ResidentSignature,
		DriverNotes:       row.DriverNotes,
		Rating:            row.Rating,
		Feedback:          row.Feedback,
	}
	if row.ActualWeightKg.Valid {
		w := row.ActualWeightKg.Decimal
		record.ActualWeightKg = &w
	}
	return record, nil
}
