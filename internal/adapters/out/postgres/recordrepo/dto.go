package recordrepo

import (
	"time"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/adapters/out/postgres/requestrepo"
	"wasteflow/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollectionRecordDTO is one row per completed request. The unique index on
// collection_request_id makes concurrent completions write a single record.
type CollectionRecordDTO struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CollectionRequestID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	VehicleID           *uuid.UUID          `gorm:"type:uuid;index"`
	DriverID            *uuid.UUID          `gorm:"type:uuid"`
	CollectedAt         time.Time           `gorm:"not null"`
	ActualWeightKg      decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	PhotoProofURL       string              `gorm:"type:text"`
	ResidentSignature   string              `gorm:"type:text"`
	DriverNotes         string              `gorm:"type:text"`
	Rating              *int                `gorm:"type:smallint;check:chk_collection_records_rating,rating BETWEEN 1 AND 5"`
	Feedback            string              `gorm:"type:text"`
	CreatedAt           time.Time           `gorm:"not null;autoCreateTime:false"`

	Request *requestrepo.CollectionRequestDTO `gorm:"foreignKey:CollectionRequestID;constraint:OnDelete:CASCADE"`
}

func (CollectionRecordDTO) TableName() string {
	return "collection_records"
}

func fromDomain(r *request.Record) CollectionRecordDTO {
	dto := CollectionRecordDTO{
		ID:                  r.ID().Bytes(),
		CollectionRequestID: r.RequestID().Bytes(),
		VehicleID:           pgtypes.FromUUIDPtr(r.VehicleID()),
		DriverID:            pgtypes.FromUUIDPtr(r.DriverID()),
		CollectedAt:         r.CollectedAt(),
		PhotoProofURL:       r.PhotoProofURL(),
		ResidentSignature:   r.ResidentSignature(),
		DriverNotes:         r.DriverNotes(),
		Rating:              r.Rating(),
		Feedback:            r.Feedback(),
		CreatedAt:           r.CreatedAt(),
	}
	if w := r.ActualWeightKg(); w != nil {
		dto.ActualWeightKg = decimal.NewNullDecimal(*w)
	}
	return dto
}

func toDomain(dto CollectionRecordDTO) (*request.Record, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	requestID, err := pgtypes.ToUUID(dto.CollectionRequestID)
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

	var weight *decimal.Decimal
	if dto.ActualWeightKg.Valid {
		weight = &dto.ActualWeightKg.Decimal
	}

	return request.RestoreRecord(
		id,
		requestID,
		vehicleID,
		driverID,
		dto.CollectedAt,
		weight,
		dto.PhotoProofURL,
		dto.ResidentSignature,
		dto.DriverNotes,
		dto.Rating,
		dto.Feedback,
		dto.CreatedAt,
	)
}
