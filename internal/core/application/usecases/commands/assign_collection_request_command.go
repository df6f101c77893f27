package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrAssignCollectionRequestCommandIsNotConstructed = errors.New(
	"AssignCollectionRequestCommand must be created via NewAssignCollectionRequestCommand constructor",
)

// AssignCollectionRequestCommand assigns a request either explicitly, to a
// vehicle and optionally a driver, or through the assignment policy when
// vehicleID is nil.
//
// companyUserID is the account of the company performing the assignment.
// When set, only that company's fleet is considered; when nil, every
// approved company is.
type AssignCollectionRequestCommand struct { //nolint:recvcheck //using for validation
	requestID     kernel.UUID
	companyUserID *kernel.UUID
	vehicleID     *kernel.UUID
	driverID      *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCollectionRequestCommand(
	requestID kernel.UUID,
	companyUserID *kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
) (AssignCollectionRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return AssignCollectionRequestCommand{}, err
	}
	if driverID != nil && vehicleID == nil {
		return AssignCollectionRequestCommand{}, errs.NewValueIsRequiredError("vehicle_id")
	}

	return AssignCollectionRequestCommand{
		requestID:     requestID,
		companyUserID: companyUserID,
		vehicleID:     vehicleID,
		driverID:      driverID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCollectionRequestCommand) Validate() error {
	return c.guard.Validate(ErrAssignCollectionRequestCommandIsNotConstructed)
}

func (c AssignCollectionRequestCommand) RequestID() kernel.UUID      { return c.requestID }
func (c AssignCollectionRequestCommand) CompanyUserID() *kernel.UUID { return c.companyUserID }
func (c AssignCollectionRequestCommand) VehicleID() *kernel.UUID     { return c.vehicleID }
func (c AssignCollectionRequestCommand) DriverID() *kernel.UUID      { return c.driverID }

// IsExplicit reports whether the caller named the vehicle.
func (c AssignCollectionRequestCommand) IsExplicit() bool {
	return c.vehicleID != nil
}
