package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListDriverRoutesQueryHandler struct {
	db *gorm.DB
}

func NewListDriverRoutesQueryHandler(db *gorm.DB) ListDriverRoutesQueryHandler {
	return ListDriverRoutesQueryHandler{db: db}
}

// Handle returns routes in start time order. A driver without routes that
// day gets an empty list.
func (h ListDriverRoutesQueryHandler) Handle(ctx context.Context, query ListDriverRoutesQuery) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []routeRow
	err := h.db.WithContext(ctx).Raw(selectRoutes+`
		JOIN drivers d ON d.id = r.driver_id
		WHERE d.user_id = ? AND r.scheduled_date = CAST(? AS date)
		ORDER BY r.scheduled_start_time, r.id
	`, query.driverUserID.Bytes(), query.date).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]RouteView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.toView())
	}
	if err := withStops(ctx, h.db, views); err != nil {
		return nil, err
	}
	return views, nil
}
