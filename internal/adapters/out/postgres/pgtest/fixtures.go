package pgtest

import (
	"strings"
	"time"

	"wasteflow/internal/adapters/out/postgres/companyrepo"
	"wasteflow/internal/adapters/out/postgres/requestrepo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fleet is an approved company with one active vehicle and one driver
// assigned to it.
type Fleet struct {
	CompanyID    uuid.UUID
	OwnerUserID  uuid.UUID
	VehicleID    uuid.UUID
	DriverID     uuid.UUID
	DriverUserID uuid.UUID
}

// SeedFleet inserts a Fleet so rows referencing companies, vehicles or
// drivers satisfy their foreign keys.
func SeedFleet(db *gorm.DB) (Fleet, error) {
	f := Fleet{
		CompanyID:    uuid.New(),
		OwnerUserID:  uuid.New(),
		VehicleID:    uuid.New(),
		DriverID:     uuid.New(),
		DriverUserID: uuid.New(),
	}
	company := companyrepo.CompanyDTO{
		ID:          f.CompanyID,
		Name:        "Fleet " + f.CompanyID.String()[:8],
		OwnerUserID: f.OwnerUserID,
		Status:      "approved",
		Vehicles: []companyrepo.VehicleDTO{{
			ID:          f.VehicleID,
			PlateNumber: "AA-" + strings.ToUpper(f.VehicleID.String()[:6]),
			CapacityKg:  decimal.NewFromInt(5000),
			Status:      "active",
		}},
		Drivers: []companyrepo.DriverDTO{{
			ID:                f.DriverID,
			UserID:            f.DriverUserID,
			AssignedVehicleID: &f.VehicleID,
			Status:            "on_duty",
		}},
	}
	if err := db.Create(&company).Error; err != nil {
		return Fleet{}, err
	}
	return f, nil
}

// SeedRequest inserts a bare pending collection request with the given id.
func SeedRequest(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	return db.Create(&requestrepo.CollectionRequestDTO{
		ID:            id,
		ResidentID:    uuid.New(),
		WasteType:     "general",
		QuantityBags:  1,
		PreferredDate: now.Truncate(24 * time.Hour),
		PreferredTime: "morning",
		Address:       "Arada",
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}
