package commands

import (
	"context"

	"wasteflow/internal/pkg/errs"
)

// RateCollectionCommandHandler stores a rating on the record of the
// resident's own request.
type RateCollectionCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewRateCollectionCommandHandler(uowFactory RequestUoWFactory) RateCollectionCommandHandler {
	return RateCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RateCollectionCommandHandler) Handle(ctx context.Context, cmd RateCollectionCommand) error {
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
	if !req.IsOwnedBy(cmd.ResidentID()) {
		return errs.NewObjectNotFoundError("collectionRequest", cmd.RequestID().String())
	}

	record, err := uow.CollectionRecordRepository().GetByRequestID(ctx, req.ID())
	if err != nil {
		return err
	}

	if err = record.Rate(cmd.Rating(), cmd.Feedback()); err != nil {
		return err
	}

	if err = uow.CollectionRecordRepository().Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
