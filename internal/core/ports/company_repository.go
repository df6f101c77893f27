package ports

import (
	"context"

	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
)

// CompanyRepository reads the company registry. Apart from vehicle
// locations, the registry is owned by another service.
type CompanyRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*fleet.Company, error)

	// GetByOwner returns the company managed by the given user account.
	GetByOwner(ctx context.Context, userID kernel.UUID) (*fleet.Company, error)

	// GetByVehicle returns the company owning the vehicle.
	GetByVehicle(ctx context.Context, vehicleID kernel.UUID) (*fleet.Company, error)

	// ListApproved returns approved companies with their vehicles and drivers.
	ListApproved(ctx context.Context) ([]*fleet.Company, error)

	GetDriverByUserID(ctx context.Context, userID kernel.UUID) (*fleet.Driver, error)

	// UpdateVehicleLocation persists the last known location of the vehicle.
	UpdateVehicleLocation(ctx context.Context, vehicle *fleet.Vehicle) error
}
