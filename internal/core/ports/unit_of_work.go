// Package ports defines the contracts between the workflow core and its
// adapters: repositories, the unit of work, the user directory and the
// event publisher.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Aggregates written through
// its repositories are tracked; their domain events are published only
// after Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction, then publishes the tracked events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and the tracked events.
	Rollback(ctx context.Context) error

	CollectionRequestRepository() CollectionRequestRepository
	CollectionRecordRepository() CollectionRecordRepository
	RouteRepository() RouteRepository
	CompanyRepository() CompanyRepository
	NotificationRepository() NotificationRepository
	WasteReportRepository() WasteReportRepository
}
