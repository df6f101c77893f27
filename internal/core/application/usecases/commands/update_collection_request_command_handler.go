package commands

import (
	"context"
	"time"

	"wasteflow/internal/pkg/errs"
)

type UpdateCollectionRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewUpdateCollectionRequestCommandHandler(uowFactory RequestUoWFactory) UpdateCollectionRequestCommandHandler {
	return UpdateCollectionRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports requests of other residents as not found.
func (h UpdateCollectionRequestCommandHandler) Handle(ctx context.Context, cmd UpdateCollectionRequestCommand) error {
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

	requests := uow.CollectionRequestRepository()
	req, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if !req.IsOwnedBy(cmd.OwnerID()) {
		return errs.NewObjectNotFoundError("collectionRequest", cmd.RequestID().String())
	}

	if err := req.UpdateDetails(cmd.Change(), time.Now().UTC()); err != nil {
		return err
	}
	if err := requests.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
