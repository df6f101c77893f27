package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/guard"
)

var ErrListCompanyRequestsQueryIsNotConstructed = errors.New(
	"ListCompanyRequestsQuery must be created via NewListCompanyRequestsQuery constructor",
)

// ListCompanyRequestsQuery lists the requests a company works with: the
// ones assigned to it plus pending requests in zones it serves, oldest
// first.
type ListCompanyRequestsQuery struct { //nolint:recvcheck //using for validation
	companyUserID kernel.UUID
	status        *request.Status

	guard guard.ConstructorGuard
}

func NewListCompanyRequestsQuery(companyUserID kernel.UUID, status string) (ListCompanyRequestsQuery, error) {
	if err := companyUserID.Validate(); err != nil {
		return ListCompanyRequestsQuery{}, err
	}
	filter, err := parseStatusFilter(status)
	if err != nil {
		return ListCompanyRequestsQuery{}, err
	}
	return ListCompanyRequestsQuery{
		companyUserID: companyUserID,
		status:        filter,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListCompanyRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListCompanyRequestsQueryIsNotConstructed)
}
