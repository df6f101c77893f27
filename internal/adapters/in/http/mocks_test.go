package http

import (
	"context"

	"wasteflow/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCommandHandlerWithResult[C, R any] struct {
	mock.Mock
}

func (m *MockCommandHandlerWithResult[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(R), args.Error(1)
}

type MockQueryHandler[Q, R any] struct {
	mock.Mock
}

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(R), args.Error(1)
}

type MockReceiptRenderer struct {
	mock.Mock
}

func (m *MockReceiptRenderer) Render(receipt queries.CollectionReceipt) ([]byte, error) {
	args := m.Called(receipt)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}
