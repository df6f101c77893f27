package request

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError("assignment must be created via NewAssignment")

// Assignment binds a request to a company and, usually, a vehicle and its
// driver. The ids are weak references into the company registry.
type Assignment struct {
	companyID kernel.UUID
	vehicleID *kernel.UUID
	driverID  *kernel.UUID
	guard     guard.ConstructorGuard
}

func NewAssignment(companyID kernel.UUID, vehicleID *kernel.UUID, driverID *kernel.UUID) (Assignment, error) {
	if err := companyID.Validate(); err != nil {
		return Assignment{}, errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}

	var errList []error
	if vehicleID != nil {
		errList = append(errList, vehicleID.Validate())
	}
	if driverID != nil {
		errList = append(errList, driverID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return Assignment{}, err
	}

	return Assignment{
		companyID: companyID,
		vehicleID: vehicleID,
		driverID:  driverID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a Assignment) CompanyID() kernel.UUID {
	return a.companyID
}

func (a Assignment) VehicleID() *kernel.UUID {
	return a.vehicleID
}

func (a Assignment) DriverID() *kernel.UUID {
	return a.driverID
}

func (a Assignment) IsEqual(other Assignment) bool {
	return a.companyID.IsEqual(other.companyID) &&
		kernel.OptionalUUIDEqual(a.vehicleID, other.vehicleID) &&
		kernel.OptionalUUIDEqual(a.driverID, other.driverID)
}
