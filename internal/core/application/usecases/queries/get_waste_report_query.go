package queries

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrGetWasteReportQueryIsNotConstructed = errors.New(
	"GetWasteReportQuery must be created via NewGetWasteReportQuery constructor",
)

// GetWasteReportQuery reads one waste report. With a resident set, reports
// filed by anyone else are not found.
type GetWasteReportQuery struct { //nolint:recvcheck //using for validation
	reportID   kernel.UUID
	residentID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWasteReportQuery(reportID kernel.UUID, residentID *kernel.UUID) (GetWasteReportQuery, error) {
	if err := reportID.Validate(); err != nil {
		return GetWasteReportQuery{}, err
	}
	if residentID != nil {
		if err := residentID.Validate(); err != nil {
			return GetWasteReportQuery{}, err
		}
	}
	return GetWasteReportQuery{
		reportID:   reportID,
		residentID: residentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetWasteReportQuery) Validate() error {
	return q.guard.Validate(ErrGetWasteReportQueryIsNotConstructed)
}
