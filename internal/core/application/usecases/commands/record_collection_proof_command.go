package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordCollectionProofCommandIsNotConstructed = errors.New(
	"RecordCollectionProofCommand must be created via NewRecordCollectionProofCommand constructor",
)

// RecordCollectionProofCommand attaches the driver's evidence to the record
// of a completed request. Empty strings leave the stored values unchanged.
type RecordCollectionProofCommand struct { //nolint:recvcheck //using for validation
	requestID         kernel.UUID
	driverUserID      kernel.UUID
	actualWeightKg    *decimal.Decimal
	photoProofURL     string
	residentSignature string
	driverNotes       string

	guard guard.ConstructorGuard
}

func NewRecordCollectionProofCommand(
	requestID kernel.UUID,
	driverUserID kernel.UUID,
	actualWeightKg *decimal.Decimal,
	photoProofURL string,
	residentSignature string,
	driverNotes string,
) (RecordCollectionProofCommand, error) {
	if err := errors.Join(requestID.Validate(), driverUserID.Validate()); err != nil {
		return RecordCollectionProofCommand{}, err
	}

	return RecordCollectionProofCommand{
		requestID:         requestID,
		driverUserID:      driverUserID,
		actualWeightKg:    actualWeightKg,
		photoProofURL:     photoProofURL,
		residentSignature: residentSignature,
		driverNotes:       driverNotes,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c RecordCollectionProofCommand) Validate() error {
	return c.guard.Validate(ErrRecordCollectionProofCommandIsNotConstructed)
}

func (c RecordCollectionProofCommand) RequestID() kernel.UUID           { return c.requestID }
func (c RecordCollectionProofCommand) DriverUserID() kernel.UUID        { return c.driverUserID }
func (c RecordCollectionProofCommand) ActualWeightKg() *decimal.Decimal { return c.actualWeightKg }
func (c RecordCollectionProofCommand) PhotoProofURL() string            { return c.photoProofURL }
func (c RecordCollectionProofCommand) ResidentSignature() string        { return c.residentSignature }
func (c RecordCollectionProofCommand) DriverNotes() string              { return c.driverNotes }
