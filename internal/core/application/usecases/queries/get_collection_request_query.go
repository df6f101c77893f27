package queries

import (
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCollectionRequestQueryIsNotConstructed = errors.New(
	"GetCollectionRequestQuery must be created via NewGetCollectionRequestQuery constructor",
)

// GetCollectionRequestQuery reads one request with its collection record.
// It does not check ownership: callers reach it after a command that did.
type GetCollectionRequestQuery struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCollectionRequestQuery(requestID kernel.UUID) (GetCollectionRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetCollectionRequestQuery{}, err
	}
	return GetCollectionRequestQuery{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCollectionRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionRequestQueryIsNotConstructed)
}

type CollectionRecordView struct {
	ID                kernel.UUID
	VehicleID         *kernel.UUID
	DriverID          *kernel.UUID
	CollectedAt       time.Time
	ActualWeightKg    *decimal.Decimal
	PhotoProofURL     string
	ResidentSignature string
	DriverNotes       string
	Rating            *int
	Feedback          string
}

// CollectionRequestDetail is a request plus its record once collected.
type CollectionRequestDetail struct {
	Request CollectionRequestView
	Record  *CollectionRecordView
}
