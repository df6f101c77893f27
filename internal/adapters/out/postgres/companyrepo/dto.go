package companyrepo

import (
	"time"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CompanyDTO mirrors the registry's company row. ZoneIDs is a text[] of
// zone uuids.
type CompanyDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	OwnerUserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Status      string         `gorm:"type:varchar(20);not null;index"`
	ZoneIDs     pq.StringArray `gorm:"type:text[]"`
	Vehicles    []VehicleDTO   `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Drivers     []DriverDTO    `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

type VehicleDTO struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	PlateNumber    string                      `gorm:"type:varchar(20);not null;uniqueIndex"`
	CapacityKg     decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	Status         string                      `gorm:"type:varchar(20);not null"`
	LastLocation   pgtypes.NullableLocationDTO `gorm:"embedded;embeddedPrefix:last_"`
	LastLocationAt *time.Time
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

type DriverDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedVehicleID *uuid.UUID `gorm:"type:uuid;index"`
	Status            string     `gorm:"type:varchar(20);not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func toDomain(dto CompanyDTO) (*fleet.Company, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	zoneIDs, err := pgtypes.ToUUIDStrings(dto.ZoneIDs)
	if err != nil {
		return nil, err
	}

	vehicles := make([]*fleet.Vehicle, 0, len(dto.Vehicles))
	for _, v := range dto.Vehicles {
		vehicle, err := vehicleToDomain(v)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	drivers := make([]*fleet.Driver, 0, len(dto.Drivers))
	for _, d := range dto.Drivers {
		driver, err := driverToDomain(d)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}

	return fleet.RestoreCompany(id, dto.Name, fleet.CompanyStatus(dto.Status), zoneIDs, vehicles, drivers)
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := pgtypes.ToUUID(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	loc, err := dto.LastLocation.ToDomain()
	if err != nil {
		return nil, err
	}
	return fleet.RestoreVehicle(
		id,
		companyID,
		dto.PlateNumber,
		dto.CapacityKg,
		fleet.VehicleStatus(dto.Status),
		loc,
		dto.LastLocationAt,
	)
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	var (
		id, userID, companyID kernel.UUID
		vehicleID             *kernel.UUID
		err                   error
	)
	if id, err = pgtypes.ToUUID(dto.ID); err != nil {
		return nil, err
	}
	if userID, err = pgtypes.ToUUID(dto.UserID); err != nil {
		return nil, err
	}
	if companyID, err = pgtypes.ToUUID(dto.CompanyID); err != nil {
		return nil, err
	}
	if vehicleID, err = pgtypes.ToUUIDPtr(dto.AssignedVehicleID); err != nil {
		return nil, err
	}
	return fleet.RestoreDriver(id, userID, companyID, vehicleID, fleet.DriverStatus(dto.Status))
}
