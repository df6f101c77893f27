package commands

import (
	"context"
	"errors"
	"time"

	"wasteflow/internal/core/domain/services"
	"wasteflow/internal/pkg/errs"
)

var ErrNoPendingRequestFound = errors.New("no pending collection request found")

// AssignPendingRequestCommandHandler assigns the oldest pending request to
// an approved company.
//
// Example:
//
//	err := handler.Handle(ctx, NewAssignPendingRequestCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingRequestFound):
//	    // nothing to do this tick
//	case errors.Is(err, services.ErrNoEligibleAssignee):
//	    // every vehicle is off duty; retry next tick
//	}
type AssignPendingRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	dispatcher services.RequestDispatcher
}

func NewAssignPendingRequestCommandHandler(
	uowFactory RequestUoWFactory,
	dispatcher services.RequestDispatcher,
) AssignPendingRequestCommandHandler {
	return AssignPendingRequestCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (h AssignPendingRequestCommandHandler) Handle(ctx context.Context, command AssignPendingRequestCommand) error {
	if err := command.Validate(); err != nil {
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

	req, err := requests.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingRequestFound
	}
	if err != nil {
		return err
	}

	companies, err := uow.CompanyRepository().ListApproved(ctx)
	if err != nil {
		return err
	}

	load, err := requests.CountActiveByVehicle(ctx)
	if err != nil {
		return err
	}

	if _, err = h.dispatcher.Dispatch(req, companies, load, time.Now().UTC()); err != nil {
		return err
	}

	if err = requests.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
