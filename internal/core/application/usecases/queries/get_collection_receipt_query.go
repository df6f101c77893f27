package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrGetCollectionReceiptQueryIsNotConstructed = errors.New(
	"GetCollectionReceiptQuery must be created via NewGetCollectionReceiptQuery constructor",
)

// GetCollectionReceiptQuery loads what a printed receipt shows for one
// completed request of the caller's company.
type GetCollectionReceiptQuery struct { //nolint:recvcheck //using for validation
	requestID     kernel.UUID
	companyUserID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCollectionReceiptQuery(requestID, companyUserID kernel.UUID) (GetCollectionReceiptQuery, error) {
	if err := errors.Join(requestID.Validate(), companyUserID.Validate()); err != nil {
		return GetCollectionReceiptQuery{}, err
	}
	return GetCollectionReceiptQuery{
		requestID:     requestID,
		companyUserID: companyUserID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetCollectionReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionReceiptQueryIsNotConstructed)
}
