package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListResidentRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListResidentRequestsQueryHandler(db *gorm.DB) ListResidentRequestsQueryHandler {
	return ListResidentRequestsQueryHandler{db: db}
}

func (h ListResidentRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListResidentRequestsQuery,
) ([]CollectionRequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := selectCollectionRequests + ` WHERE resident_id = ?`
	args := []any{query.residentID.Bytes()}
	if query.status != nil {
		sql += ` AND status = ?`
		args = append(args, query.status.String())
	}
	sql += ` ORDER BY created_at DESC, id`

	var rows []collectionRequestRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCollectionRequestViews(rows), nil
}
