package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/ports"
	"wasteflow/internal/pkg/errs"
)

// CreateCollectionRequestCommandHandler stores a pending request. The zone
// is copied from the resident's profile so later profile changes do not
// move existing requests.
type CreateCollectionRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	users      ports.UserDirectory
}

func NewCreateCollectionRequestCommandHandler(
	uowFactory RequestUoWFactory,
	users ports.UserDirectory,
) CreateCollectionRequestCommandHandler {
	return CreateCollectionRequestCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

func (h CreateCollectionRequestCommandHandler) Handle(ctx context.Context, cmd CreateCollectionRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profile, err := h.users.GetProfile(ctx, cmd.ResidentID())
	if err != nil {
		return err
	}
	if !profile.IsActive || profile.UserType != ports.Resident {
		return errs.NewPermissionDeniedError("create collection requests")
	}

	req, err := request.NewCollectionRequest(
		cmd.RequestID(),
		cmd.ResidentID(),
		profile.ZoneID,
		cmd.Details(),
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

	if err = uow.CollectionRequestRepository().Add(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
