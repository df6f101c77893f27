package commands_test

import (
	"testing"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCollectionRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	req := newPendingRequest(t)
	loc, err := kernel.NewLocation(9.05, 38.8)
	require.NoError(t, err)
	bags := 4

	cmd, err := commands.NewUpdateCollectionRequestCommand(req.ID(), req.ResidentID(),
		request.DetailsChange{QuantityBags: &bags, Location: &loc})
	require.NoError(t, err)

	uow, repos := newTestUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repos.requests.On("Get", ctx, req.ID()).Return(req, nil).Once(),
		repos.requests.On("Update", ctx, req).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCollectionRequestCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, 4, req.Details().QuantityBags())
	require.NotNil(t, req.Details().Location())
	assert.InDelta(t, 9.05, req.Details().Location().Lat(), 1e-9)
	assert.Equal(t, "Bole, house 12", req.Details().Address())

	uow.AssertExpectations(t)
	repos.assertExpectations(t)
}

func TestUpdateCollectionRequestCommandHandler_Handle_OtherResidentIsNotFound(t *testing.T) {
	ctx := t.Context()
	req := newPendingRequest(t)
	address := "Piassa"

	cmd, err := commands.NewUpdateCollectionRequestCommand(req.ID(), kernel.NewUUID(),
		request.DetailsChange{Address: &address})
	require.NoError(t, err)

	uow, repos := newTestUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repos.requests.On("Get", ctx, req.ID()).Return(req, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateCollectionRequestCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, "Bole, house 12", req.Details().Address())
	repos.requests.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateCollectionRequestCommandHandler_Handle_AssignedIsRejected(t *testing.T) {
	ctx := t.Context()
	req := newAssignedRequest(t, newTestFleet(t))
	address := "Piassa"

	cmd, err := commands.NewUpdateCollectionRequestCommand(req.ID(), req.ResidentID(),
		request.DetailsChange{Address: &address})
	require.NoError(t, err)

	uow, repos := newTestUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repos.requests.On("Get", ctx, req.ID()).Return(req, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateCollectionRequestCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransitionRejected)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUpdateCollectionRequestCommand_RejectsUnconstructedLocation(t *testing.T) {
	_, err := commands.NewUpdateCollectionRequestCommand(kernel.NewUUID(), kernel.NewUUID(),
		request.DetailsChange{Location: &kernel.Location{}})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateCollectionRequestCommandHandler_Handle_NotConstructed(t *testing.T) {
	handler := commands.NewUpdateCollectionRequestCommandHandler(new(MockRequestUoWFactory))

	err := handler.Handle(t.Context(), commands.UpdateCollectionRequestCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateCollectionRequestCommandIsNotConstructed)
}
