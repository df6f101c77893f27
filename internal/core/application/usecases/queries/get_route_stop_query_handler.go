package queries

import (
	"context"

	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRouteStopQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteStopQueryHandler(db *gorm.DB) GetRouteStopQueryHandler {
	return GetRouteStopQueryHandler{db: db}
}

func (h GetRouteStopQueryHandler) Handle(ctx context.Context, query GetRouteStopQuery) (StopView, error) {
	if err := query.Validate(); err != nil {
		return StopView{}, err
	}

	var row stopRow
	result := h.db.WithContext(ctx).Raw(selectStops+` WHERE id = ?`, query.stopID.Bytes()).Scan(&row)
	if result.Error != nil {
		return StopView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return StopView{}, errs.NewObjectNotFoundError("stopId", query.stopID.String())
	}
	return row.toView(), nil
}
