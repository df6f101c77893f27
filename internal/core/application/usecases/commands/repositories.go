// Package commands contains the operations that change workflow state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load aggregates, apply the domain transition, persist, commit.
package commands

import (
	"context"

	"wasteflow/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler touches.
// ports.UnitOfWork satisfies all of them.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RequestRepoFactory interface {
		CollectionRequestRepository() ports.CollectionRequestRepository
	}

	RecordRepoFactory interface {
		CollectionRecordRepository() ports.CollectionRecordRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	ReportRepoFactory interface {
		WasteReportRepository() ports.WasteReportRepository
	}

	// RequestUoW covers the collection request lifecycle, its record and the
	// company registry used by assignment.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
		RecordRepoFactory
		CompanyRepoFactory
	}

	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// RouteUoW covers routes and the requests linked to their stops.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		RequestRepoFactory
		RecordRepoFactory
		CompanyRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	ReportUoW interface {
		TxManager
		ReportRepoFactory
	}

	ReportUoWFactory interface {
		Create() ReportUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	FleetUoW interface {
		TxManager
		CompanyRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}
)
