package queries

import (
	"context"

	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetWasteReportQueryHandler struct {
	db *gorm.DB
}

func NewGetWasteReportQueryHandler(db *gorm.DB) GetWasteReportQueryHandler {
	return GetWasteReportQueryHandler{db: db}
}

func (h GetWasteReportQueryHandler) Handle(ctx context.Context, query GetWasteReportQuery) (WasteReportView, error) {
	if err := query.Validate(); err != nil {
		return WasteReportView{}, err
	}

	sql := selectWasteReports + ` WHERE id = ?`
	args := []any{query.reportID.Bytes()}
	if query.residentID != nil {
		sql += ` AND resident_id = ?`
		args = append(args, query.residentID.Bytes())
	}

	var row wasteReportRow
	result := h.db.WithContext(ctx).Raw(sql, args...).Scan(&row)
	if result.Error != nil {
		return WasteReportView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return WasteReportView{}, errs.NewObjectNotFoundError("reportId", query.reportID.String())
	}
	return row.toView(), nil
}
