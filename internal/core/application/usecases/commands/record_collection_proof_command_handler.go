package commands

import (
	"context"

	"wasteflow/internal/pkg/errs"
)

// RecordCollectionProofCommandHandler lets the driver assigned to a request
// fill in weight, photo, signature and notes.
type RecordCollectionProofCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewRecordCollectionProofCommandHandler(uowFactory RequestUoWFactory) RecordCollectionProofCommandHandler {
	return RecordCollectionProofCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordCollectionProofCommandHandler) Handle(ctx context.Context, cmd RecordCollectionProofCommand) error {
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

	req, err := uow.CollectionRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	driver, err := uow.CompanyRepository().GetDriverByUserID(ctx, cmd.DriverUserID())
	if err != nil {
		return err
	}
	a := req.Assignment()
	if a == nil || a.DriverID() == nil || !a.DriverID().IsEqual(driver.ID()) {
		return errs.NewPermissionDeniedError("record proof for a request assigned to another driver")
	}

	record, err := uow.CollectionRecordRepository().GetByRequestID(ctx, req.ID())
	if err != nil {
		return err
	}

	if err = record.RecordProof(
		cmd.ActualWeightKg(),
		cmd.PhotoProofURL(),
		cmd.ResidentSignature(),
		cmd.DriverNotes(),
	); err != nil {
		return err
	}

	if err = uow.CollectionRecordRepository().Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
