package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrListResidentReportsQueryIsNotConstructed = errors.New(
	"ListResidentReportsQuery must be created via NewListResidentReportsQuery constructor",
)

// ListResidentReportsQuery lists the waste reports the resident filed,
// newest first.
type ListResidentReportsQuery struct { //nolint:recvcheck //using for validation
	residentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListResidentReportsQuery(residentID kernel.UUID) (ListResidentReportsQuery, error) {
	if err := residentID.Validate(); err != nil {
		return ListResidentReportsQuery{}, err
	}
	return ListResidentReportsQuery{
		residentID: residentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListResidentReportsQuery) Validate() error {
	return q.guard.Validate(ErrListResidentReportsQueryIsNotConstructed)
}
