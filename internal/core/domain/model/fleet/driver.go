package fleet

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via RestoreDriver")

// Driver links an identity-directory user to a company and, optionally, to
// the vehicle they operate.
type Driver struct {
	id                kernel.UUID
	userID            kernel.UUID
	companyID         kernel.UUID
	assignedVehicleID *kernel.UUID
	status            DriverStatus
	guard             guard.ConstructorGuard
}

func RestoreDriver(
	id kernel.UUID,
	userID kernel.UUID,
	companyID kernel.UUID,
	assignedVehicleID *kernel.UUID,
	status DriverStatus,
) (*Driver, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), companyID.Validate()); err != nil {
		return nil, err
	}
	return &Driver{
		id:                id,
		userID:            userID,
		companyID:         companyID,
		assignedVehicleID: assignedVehicleID,
		status:            status,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID                 { return d.id }
func (d *Driver) UserID() kernel.UUID             { return d.userID }
func (d *Driver) CompanyID() kernel.UUID          { return d.companyID }
func (d *Driver) AssignedVehicleID() *kernel.UUID { return d.assignedVehicleID }
func (d *Driver) Status() DriverStatus            { return d.status }

func (d *Driver) IsOnDuty() bool {
	return d.status == DriverOnDuty
}

func (d *Driver) Drives(vehicleID kernel.UUID) bool {
	return d.assignedVehicleID != nil && d.assignedVehicleID.IsEqual(vehicleID)
}
