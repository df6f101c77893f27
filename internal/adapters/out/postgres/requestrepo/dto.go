package requestrepo

import (
	"time"

	"wasteflow/internal/adapters/out/postgres/companyrepo"
	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CollectionRequestDTO struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	ResidentID          uuid.UUID                   `gorm:"type:uuid;not null;index"`
	ZoneID              *uuid.UUID                  `gorm:"type:uuid;index"`
	WasteType           string                      `gorm:"type:varchar(20);not null"`
	QuantityBags        int                         `gorm:"type:int;not null;default:1"`
	EstimatedWeightKg   decimal.NullDecimal         `gorm:"type:numeric(8,2)"`
	PreferredDate       time.Time                   `gorm:"type:date;not null"`
	PreferredTime       string                      `gorm:"type:varchar(20);not null"`
	Address             string                      `gorm:"type:text;not null"`
	Location            pgtypes.NullableLocationDTO `gorm:"embedded"`
	SpecialInstructions string                      `gorm:"type:text"`
	Status              string                      `gorm:"type:varchar(20);not null;index"`
	AssignedCompanyID   *uuid.UUID                  `gorm:"type:uuid;index"`
	AssignedVehicleID   *uuid.UUID                  `gorm:"type:uuid;index"`
	AssignedDriverID    *uuid.UUID                  `gorm:"type:uuid"`
	EstimatedArrival    *time.Time
	CollectedAt         *time.Time
	CreatedAt           time.Time `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt           time.Time `gorm:"not null;autoUpdateTime:false"`

	// Removing a company, vehicle or driver keeps the request and drops the
	// reference.
	AssignedCompany *companyrepo.CompanyDTO `gorm:"foreignKey:AssignedCompanyID;constraint:OnDelete:SET NULL"`
	AssignedVehicle *companyrepo.VehicleDTO `gorm:"foreignKey:AssignedVehicleID;constraint:OnDelete:SET NULL"`
	AssignedDriver  *companyrepo.DriverDTO  `gorm:"foreignKey:AssignedDriverID;constraint:OnDelete:SET NULL"`
}

func (CollectionRequestDTO) TableName() string {
	return "collection_requests"
}

func fromDomain(r *request.CollectionRequest) CollectionRequestDTO {
	d := r.Details()
	dto := CollectionRequestDTO{
		ID:                  r.ID().Bytes(),
		ResidentID:          r.ResidentID().Bytes(),
		ZoneID:              pgtypes.FromUUIDPtr(r.ZoneID()),
		WasteType:           string(d.WasteType()),
		QuantityBags:        d.QuantityBags(),
		PreferredDate:       d.PreferredDate(),
		PreferredTime:       string(d.PreferredTime()),
		Address:             d.Address(),
		Location:            pgtypes.FromOptionalLocation(d.Location()),
		SpecialInstructions: d.SpecialInstructions(),
		Status:              r.Status().String(),
		EstimatedArrival:    r.EstimatedArrival(),
		CollectedAt:         r.CollectedAt(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
	if w := d.EstimatedWeightKg(); w != nil {
		dto.EstimatedWeightKg = decimal.NewNullDecimal(*w)
	}
	if a := r.Assignment(); a != nil {
		companyID := a.CompanyID().Bytes()
		dto.AssignedCompanyID = &companyID
		dto.AssignedVehicleID = pgtypes.FromUUIDPtr(a.VehicleID())
		dto.AssignedDriverID = pgtypes.FromUUIDPtr(a.DriverID())
	}
	return dto
}

func toDomain(dto CollectionRequestDTO) (*request.CollectionRequest, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	residentID, err := pgtypes.ToUUID(dto.ResidentID)
	if err != nil {
		return nil, err
	}
	zoneID, err := pgtypes.ToUUIDPtr(dto.ZoneID)
	if err != nil {
		return nil, err
	}
	loc, err := dto.Location.ToDomain()
	if err != nil {
		return nil, err
	}
	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var weight *decimal.Decimal
	if dto.EstimatedWeightKg.Valid {
		weight = &dto.EstimatedWeightKg.Decimal
	}

	details, err := request.NewDetails(
		request.WasteType(dto.WasteType),
		dto.QuantityBags,
		weight,
		dto.PreferredDate,
		request.TimeWindow(dto.PreferredTime),
		dto.Address,
		loc,
		dto.SpecialInstructions,
	)
	if err != nil {
		return nil, err
	}

	assignment, err := assignmentToDomain(dto)
	if err != nil {
		return nil, err
	}

	return request.RestoreCollectionRequest(
		id,
		residentID,
		zoneID,
		details,
		status,
		assignment,
		dto.EstimatedArrival,
		dto.CollectedAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func assignmentToDomain(dto CollectionRequestDTO) (*request.Assignment, error) {
	if dto.AssignedCompanyID == nil {
		return nil, nil
	}
	companyID, err := pgtypes.ToUUID(*dto.AssignedCompanyID)
	if err != nil {
		return nil, err
	}
	var vehicleID, driverID *kernel.UUID
	if vehicleID, err = pgtypes.ToUUIDPtr(dto.AssignedVehicleID); err != nil {
		return nil, err
	}
	if driverID, err = pgtypes.ToUUIDPtr(dto.AssignedDriverID); err != nil {
		return nil, err
	}
	a, err := request.NewAssignment(companyID, vehicleID, driverID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
