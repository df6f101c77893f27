package ports

import (
	"context"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/route"
)

// RouteRepository persists routes together with their stops.
type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error

	// Update saves the route and all of its stops.
	Update(ctx context.Context, aggregate *route.Route) error

	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetInStatus returns errs.ErrObjectNotFound when the route does not
	// exist or is not in status.
	GetInStatus(ctx context.Context, id kernel.UUID, status route.Status) (*route.Route, error)

	// GetByStopID loads the route owning the stop.
	GetByStopID(ctx context.Context, stopID kernel.UUID) (*route.Route, error)

	// GetFirstForDriver returns the driver's route in status with the
	// earliest scheduled date.
	GetFirstForDriver(ctx context.Context, driverID kernel.UUID, status route.Status) (*route.Route, error)
}
