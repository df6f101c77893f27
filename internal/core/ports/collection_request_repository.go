package ports

import (
	"context"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
)

// CollectionRequestRepository defines the persistence contract for
// collection request aggregates.
type CollectionRequestRepository interface {
	// Add persists a new request. Its domain events are published after commit.
	Add(ctx context.Context, aggregate *request.CollectionRequest) error

	// Update persists status, assignment and timestamps of an existing request.
	Update(ctx context.Context, aggregate *request.CollectionRequest) error

	// Get returns errs.ErrObjectNotFound when no request has the id.
	Get(ctx context.Context, id kernel.UUID) (*request.CollectionRequest, error)

	// GetFirstPending returns the oldest pending request, used by the
	// automatic assignment job.
	GetFirstPending(ctx context.Context) (*request.CollectionRequest, error)

	// CountActiveByVehicle counts assigned and in-progress requests per vehicle.
	CountActiveByVehicle(ctx context.Context) (map[kernel.UUID]int, error)
}

// CollectionRecordRepository stores the single record of a completed request.
type CollectionRecordRepository interface {
	// AddIfAbsent inserts the record unless one already exists for the same
	// request. It reports whether a row was written. The unique key on the
	// request id arbitrates concurrent completions.
	AddIfAbsent(ctx context.Context, record *request.Record) (bool, error)

	Update(ctx context.Context, record *request.Record) error

	// GetByRequestID returns errs.ErrObjectNotFound when the request has no record.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*request.Record, error)
}
