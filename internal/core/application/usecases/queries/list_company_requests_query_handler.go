package queries

import (
	"context"

	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListCompanyRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListCompanyRequestsQueryHandler(db *gorm.DB) ListCompanyRequestsQueryHandler {
	return ListCompanyRequestsQueryHandler{db: db}
}

// Handle applies the zone rule assignment uses: requests without a zone
// are visible to every company.
func (h ListCompanyRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListCompanyRequestsQuery,
) ([]CollectionRequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var company struct {
		ID      uuid.UUID
		ZoneIDs pq.StringArray
	}
	result := db.Raw(`SELECT id, zone_ids FROM companies WHERE owner_user_id = ?`,
		query.companyUserID.Bytes()).Scan(&company)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("companyUserId", query.companyUserID.String())
	}

	sql := selectCollectionRequests + `
		WHERE (assigned_company_id = ?
			OR (status = ? AND (zone_id IS NULL OR zone_id::text = ANY(?::text[]))))`
	zones := company.ZoneIDs
	if zones == nil {
		zones = pq.StringArray{}
	}
	args := []any{company.ID, request.Pending.String(), zones}
	if query.status != nil {
		sql += ` AND status = ?`
		args = append(args, query.status.String())
	}
	sql += ` ORDER BY created_at, id`

	var rows []collectionRequestRow
	if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCollectionRequestViews(rows), nil
}
