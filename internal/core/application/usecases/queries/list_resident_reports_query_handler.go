package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListResidentReportsQueryHandler struct {
	db *gorm.DB
}

func NewListResidentReportsQueryHandler(db *gorm.DB) ListResidentReportsQueryHandler {
	return ListResidentReportsQueryHandler{db: db}
}

func (h ListResidentReportsQueryHandler) Handle(
	ctx context.Context,
	query ListResidentReportsQuery,
) ([]WasteReportView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []wasteReportRow
	err := h.db.WithContext(ctx).
		Raw(selectWasteReports+` WHERE resident_id = ? ORDER BY reported_at DESC, id`, query.residentID.Bytes()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]WasteReportView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.toView())
	}
	return views, nil
}
