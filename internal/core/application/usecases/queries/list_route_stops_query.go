package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrListRouteStopsQueryIsNotConstructed = errors.New(
	"ListRouteStopsQuery must be created via NewListRouteStopsQuery constructor",
)

type ListRouteStopsQuery struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	companyUserID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListRouteStopsQuery(routeID, companyUserID kernel.UUID) (ListRouteStopsQuery, error) {
	if err := errors.Join(routeID.Validate(), companyUserID.Validate()); err != nil {
		return ListRouteStopsQuery{}, err
	}
	return ListRouteStopsQuery{
		routeID:       routeID,
		companyUserID: companyUserID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListRouteStopsQuery) Validate() error {
	return q.guard.Validate(ErrListRouteStopsQueryIsNotConstructed)
}
