package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"
)

// TransitionCollectionRequestCommandHandler applies a status change.
// Completion goes through the record get-or-create path so that repeating
// it neither re-stamps the request nor writes a second record.
type TransitionCollectionRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewTransitionCollectionRequestCommandHandler(uowFactory RequestUoWFactory) TransitionCollectionRequestCommandHandler {
	return TransitionCollectionRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h TransitionCollectionRequestCommandHandler) Handle(ctx context.Context, cmd TransitionCollectionRequestCommand) error {
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
	if cmd.OwnerID() != nil && !req.IsOwnedBy(*cmd.OwnerID()) {
		return errs.NewObjectNotFoundError("collectionRequest", cmd.RequestID().String())
	}

	now := time.Now().UTC()
	if cmd.Target() == request.Completed {
		err = completeRequest(ctx, uow, req, now)
	} else {
		if err = req.TransitionTo(cmd.Target(), now); err == nil {
			err = requests.Update(ctx, req)
		}
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
