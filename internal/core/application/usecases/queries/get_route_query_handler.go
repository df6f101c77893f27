package queries

import (
	"context"

	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	var row routeRow
	result := h.db.WithContext(ctx).Raw(selectRoutes+` WHERE r.id = ?`, query.routeID.Bytes()).Scan(&row)
	if result.Error != nil {
		return RouteView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return RouteView{}, errs.NewObjectNotFoundError("routeId", query.routeID.String())
	}

	view := row.toView()
	stops, err := loadStops(ctx, h.db, row.ID)
	if err != nil {
		return RouteView{}, err
	}
	view.Stops = stops
	return view, nil
}
