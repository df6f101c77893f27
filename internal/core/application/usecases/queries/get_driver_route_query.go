package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrGetDriverRouteQueryIsNotConstructed = errors.New(
	"GetDriverRouteQuery must be created via NewGetDriverRouteQuery constructor",
)

// GetDriverRouteQuery returns the driver's current route: the earliest
// scheduled or running one, with its stops in sequence order.
type GetDriverRouteQuery struct { //nolint:recvcheck //using for validation
	driverUserID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverRouteQuery(driverUserID kernel.UUID) (GetDriverRouteQuery, error) {
	if err := driverUserID.Validate(); err != nil {
		return GetDriverRouteQuery{}, err
	}
	return GetDriverRouteQuery{
		driverUserID: driverUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRouteQueryIsNotConstructed)
}
