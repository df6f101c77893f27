package commands

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/domain/services"
	"wasteflow/internal/pkg/errs"
)

// AssignCollectionRequestCommandHandler resolves the assignee of a request.
//
// Example:
//
//	handler := NewAssignCollectionRequestCommandHandler(uowFactory,
//	    services.NewRequestDispatcher(services.NewZoneLoadAssignmentPolicy()))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoEligibleAssignee):
//	    // 422, the request stays pending
//	case errors.Is(err, errs.ErrTransitionRejected):
//	    // 409, the request is already in progress or closed
//	}
type AssignCollectionRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	dispatcher services.RequestDispatcher
}

func NewAssignCollectionRequestCommandHandler(
	uowFactory RequestUoWFactory,
	dispatcher services.RequestDispatcher,
) AssignCollectionRequestCommandHandler {
	return AssignCollectionRequestCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (h AssignCollectionRequestCommandHandler) Handle(ctx context.Context, cmd AssignCollectionRequestCommand) error {
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

	var company *fleet.Company
	if cmd.CompanyUserID() != nil {
		if company, err = uow.CompanyRepository().GetByOwner(ctx, *cmd.CompanyUserID()); err != nil {
			return err
		}
		if !company.IsApproved() {
			return errs.NewPermissionDeniedError("assign collection requests")
		}
	}

	if err = h.assign(ctx, uow, req, company, cmd, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CollectionRequestRepository().Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AssignCollectionRequestCommandHandler) assign(
	ctx context.Context,
	uow RequestUoW,
	req *request.CollectionRequest,
	company *fleet.Company,
	cmd AssignCollectionRequestCommand,
	at time.Time,
) error {
	var err error

	if cmd.IsExplicit() {
		if company == nil {
			if company, err = uow.CompanyRepository().GetByVehicle(ctx, *cmd.VehicleID()); err != nil {
				return err
			}
		}
		_, err = h.dispatcher.AssignTo(req, company, *cmd.VehicleID(), cmd.DriverID(), at)
		return err
	}

	companies := []*fleet.Company{company}
	if company == nil {
		if companies, err = uow.CompanyRepository().ListApproved(ctx); err != nil {
			return err
		}
	}

	load, err := uow.CollectionRequestRepository().CountActiveByVehicle(ctx)
	if err != nil {
		return err
	}

	_, err = h.dispatcher.Dispatch(req, companies, load, at)
	return err
}
