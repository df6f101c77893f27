package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrUpdateWasteReportCommandIsNotConstructed = errors.New(
	"UpdateWasteReportCommand must be created via NewUpdateWasteReportCommand constructor",
)

type UpdateWasteReportCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.UUID
	update   complaint.Update

	guard guard.ConstructorGuard
}

func NewUpdateWasteReportCommand(reportID kernel.UUID, update complaint.Update) (UpdateWasteReportCommand, error) {
	if err := reportID.Validate(); err != nil {
		return UpdateWasteReportCommand{}, err
	}
	if update.Status == nil && update.Response == nil && update.AssignedCompanyID == nil {
		return UpdateWasteReportCommand{}, errs.NewValueIsRequiredError("status, response or assigned_company_id")
	}
	if update.Status != nil {
		if err := update.Status.Validate(); err != nil {
			return UpdateWasteReportCommand{}, err
		}
	}

	return UpdateWasteReportCommand{
		reportID: reportID,
		update:   update,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateWasteReportCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWasteReportCommandIsNotConstructed)
}

func (c UpdateWasteReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

func (c UpdateWasteReportCommand) Update() complaint.Update {
	return c.update
}
