package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrGetRouteStopQueryIsNotConstructed = errors.New(
	"GetRouteStopQuery must be created via NewGetRouteStopQuery constructor",
)

type GetRouteStopQuery struct { //nolint:recvcheck //using for validation
	stopID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteStopQuery(stopID kernel.UUID) (GetRouteStopQuery, error) {
	if err := stopID.Validate(); err != nil {
		return GetRouteStopQuery{}, err
	}
	return GetRouteStopQuery{
		stopID: stopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetRouteStopQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteStopQueryIsNotConstructed)
}
