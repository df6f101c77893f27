package commands

import (
	"context"
	"time"
)

// UpdateWasteReportCommandHandler applies a supervisor or company response
// to a complaint. The resident is notified through the raised event.
type UpdateWasteReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

func NewUpdateWasteReportCommandHandler(uowFactory ReportUoWFactory) UpdateWasteReportCommandHandler {
	return UpdateWasteReportCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateWasteReportCommandHandler) Handle(ctx context.Context, cmd UpdateWasteReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	report, err := uow.WasteReportRepository().Get(ctx, cmd.ReportID())
	if err != nil {
		return err
	}

	if err = report.Apply(cmd.Update(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.WasteReportRepository().Update(ctx, report); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
