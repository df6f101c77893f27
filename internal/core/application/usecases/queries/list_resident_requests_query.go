package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/guard"
)

var ErrListResidentRequestsQueryIsNotConstructed = errors.New(
	"ListResidentRequestsQuery must be created via NewListResidentRequestsQuery constructor",
)

// ListResidentRequestsQuery lists the resident's own requests, newest
// first, optionally narrowed to one status.
type ListResidentRequestsQuery struct { //nolint:recvcheck //using for validation
	residentID kernel.UUID
	status     *request.Status

	guard guard.ConstructorGuard
}

func NewListResidentRequestsQuery(residentID kernel.UUID, status string) (ListResidentRequestsQuery, error) {
	if err := residentID.Validate(); err != nil {
		return ListResidentRequestsQuery{}, err
	}
	filter, err := parseStatusFilter(status)
	if err != nil {
		return ListResidentRequestsQuery{}, err
	}
	return ListResidentRequestsQuery{
		residentID: residentID,
		status:     filter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListResidentRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListResidentRequestsQueryIsNotConstructed)
}

func parseStatusFilter(status string) (*request.Status, error) {
	if status == "" {
		return nil, nil
	}
	s, err := request.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
