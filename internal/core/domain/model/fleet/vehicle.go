package fleet

import (
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via RestoreVehicle")

// Vehicle is a company truck. Only its last known location is written by
// this service; the rest comes from the company registry.
type Vehicle struct {
	id             kernel.UUID
	companyID      kernel.UUID
	plateNumber    string
	capacityKg     decimal.Decimal
	status         VehicleStatus
	lastLocation   *kernel.Location
	lastLocationAt *time.Time
	guard          guard.ConstructorGuard
}

func RestoreVehicle(
	id kernel.UUID,
	companyID kernel.UUID,
	plateNumber string,
	capacityKg decimal.Decimal,
	status VehicleStatus,
	lastLocation *kernel.Location,
	lastLocationAt *time.Time,
) (*Vehicle, error) {
	if err := errors.Join(id.Validate(), companyID.Validate()); err != nil {
		return nil, err
	}
	return &Vehicle{
		id:             id,
		companyID:      companyID,
		plateNumber:    plateNumber,
		capacityKg:     capacityKg,
		status:         status,
		lastLocation:   lastLocation,
		lastLocationAt: lastLocationAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.UUID                { return v.id }
func (v *Vehicle) CompanyID() kernel.UUID         { return v.companyID }
func (v *Vehicle) PlateNumber() string            { return v.plateNumber }
func (v *Vehicle) CapacityKg() decimal.Decimal    { return v.capacityKg }
func (v *Vehicle) Status() VehicleStatus          { return v.status }
func (v *Vehicle) LastLocation() *kernel.Location { return v.lastLocation }
func (v *Vehicle) LastLocationAt() *time.Time     { return v.lastLocationAt }

func (v *Vehicle) IsActive() bool {
	return v.status == VehicleActive
}

// UpdateLocation records a position reported by the driver.
func (v *Vehicle) UpdateLocation(loc kernel.Location, at time.Time) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	if v.lastLocationAt != nil && at.Before(*v.lastLocationAt) {
		return errs.NewValueIsInvalidError("location is older than the last reported one")
	}
	v.lastLocation = &loc
	v.lastLocationAt = &at
	return nil
}

// DistanceTo returns the distance from the last known location, or false
// when the vehicle has never reported one.
func (v *Vehicle) DistanceTo(loc kernel.Location) (float64, bool) {
	if v.lastLocation == nil {
		return 0, false
	}
	d, err := v.lastLocation.DistanceMeters(loc)
	if err != nil {
		return 0, false
	}
	return d, true
}
