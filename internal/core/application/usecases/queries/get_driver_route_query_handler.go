package queries

import (
	"context"

	"wasteflow/internal/core/domain/model/route"
	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDriverRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverRouteQueryHandler(db *gorm.DB) GetDriverRouteQueryHandler {
	return GetDriverRouteQueryHandler{db: db}
}

func (h GetDriverRouteQueryHandler) Handle(ctx context.Context, query GetDriverRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	var row routeRow
	result := h.db.WithContext(ctx).Raw(selectRoutes+`
		JOIN drivers d ON d.id = r.driver_id
		WHERE d.user_id = ? AND r.status IN (?, ?)
		ORDER BY r.scheduled_date, r.scheduled_start_time
		LIMIT 1
	`, query.driverUserID.Bytes(), route.Scheduled.String(), route.InProgress.String()).Scan(&row)
	if result.Error != nil {
		return RouteView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return RouteView{}, errs.NewObjectNotFoundError("route", "no current route")
	}

	view := row.toView()
	stops, err := loadStops(ctx, h.db, row.ID)
	if err != nil {
		return RouteView{}, err
	}
	view.Stops = stops
	return view, nil
}
