package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrCreateWasteReportCommandIsNotConstructed = errors.New(
	"CreateWasteReportCommand must be created via NewCreateWasteReportCommand constructor",
)

type CreateWasteReportCommand struct { //nolint:recvcheck //using for validation
	reportID    kernel.UUID
	residentID  kernel.UUID
	reportType  complaint.ReportType
	priority    complaint.Priority
	description string
	address     string
	location    *kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateWasteReportCommand checks identifiers and enumerations; text
// fields are validated when the report is built. An empty priority means
// medium.
func NewCreateWasteReportCommand(
	reportID kernel.UUID,
	residentID kernel.UUID,
	reportType complaint.ReportType,
	priority complaint.Priority,
	description string,
	address string,
	location *kernel.Location,
) (CreateWasteReportCommand, error) {
	if priority == "" {
		priority = complaint.Medium
	}
	if err := errors.Join(
		reportID.Validate(),
		residentID.Validate(),
		reportType.Validate(),
		priority.Validate(),
	); err != nil {
		return CreateWasteReportCommand{}, err
	}

	return CreateWasteReportCommand{
		reportID:    reportID,
		residentID:  residentID,
		reportType:  reportType,
		priority:    priority,
		description: description,
		address:     address,
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWasteReportCommand) Validate() error {
	return c.guard.Validate(ErrCreateWasteReportCommandIsNotConstructed)
}

func (c CreateWasteReportCommand) ReportID() kernel.UUID            { return c.reportID }
func (c CreateWasteReportCommand) ResidentID() kernel.UUID          { return c.residentID }
func (c CreateWasteReportCommand) ReportType() complaint.ReportType { return c.reportType }
func (c CreateWasteReportCommand) Priority() complaint.Priority     { return c.priority }
func (c CreateWasteReportCommand) Description() string              { return c.description }
func (c CreateWasteReportCommand) Address() string                  { return c.address }
func (c CreateWasteReportCommand) Location() *kernel.Location       { return c.location }
