package queries

import (
	"context"

	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListRouteStopsQueryHandler struct {
	db *gorm.DB
}

func NewListRouteStopsQueryHandler(db *gorm.DB) ListRouteStopsQueryHandler {
	return ListRouteStopsQueryHandler{db: db}
}

// Handle reports routes of other companies as not found.
func (h ListRouteStopsQueryHandler) Handle(ctx context.Context, query ListRouteStopsQuery) ([]StopView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM routes r
		JOIN companies c ON c.id = r.company_id
		WHERE r.id = ? AND c.owner_user_id = ?
	`, query.routeID.Bytes(), query.companyUserID.Bytes()).Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("routeId", query.routeID.String())
	}

	return loadStops(ctx, h.db, query.routeID.Bytes())
}
