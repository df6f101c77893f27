package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/complaint"
)

type CreateWasteReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

func NewCreateWasteReportCommandHandler(uowFactory ReportUoWFactory) CreateWasteReportCommandHandler {
	return CreateWasteReportCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateWasteReportCommandHandler) Handle(ctx context.Context, cmd CreateWasteReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	report, err := complaint.NewReport(
		cmd.ReportID(),
		cmd.ResidentID(),
		cmd.ReportType(),
		cmd.Priority(),
		cmd.Description(),
		cmd.Address(),
		cmd.Location(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WasteReportRepository().Add(ctx, report); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
