package queries

import (
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/guard"
)

var ErrListDriverRoutesQueryIsNotConstructed = errors.New(
	"ListDriverRoutesQuery must be created via NewListDriverRoutesQuery constructor",
)

// ListDriverRoutesQuery lists every route of the driver scheduled on the
// calendar day of `day` in the service time zone, whatever its status.
type ListDriverRoutesQuery struct { //nolint:recvcheck //using for validation
	driverUserID kernel.UUID
	date         string

	guard guard.ConstructorGuard
}

func NewListDriverRoutesQuery(driverUserID kernel.UUID, day time.Time) (ListDriverRoutesQuery, error) {
	if err := driverUserID.Validate(); err != nil {
		return ListDriverRoutesQuery{}, err
	}
	return ListDriverRoutesQuery{
		driverUserID: driverUserID,
		date:         day.In(request.ServiceTimeZone).Format(time.DateOnly),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListDriverRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListDriverRoutesQueryIsNotConstructed)
}
