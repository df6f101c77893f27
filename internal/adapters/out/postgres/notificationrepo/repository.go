// Package notificationrepo stores in-app notifications.
package notificationrepo

import (
	"context"
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/notification"
	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// batchSize bounds the rows per INSERT statement of a broadcast.
const batchSize = 500

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationRepository) AddBatch(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	dtos := make([]NotificationDTO, 0, len(ns))
	for _, n := range ns {
		if err := n.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(n))
	}
	return r.db.WithContext(ctx).CreateInBatches(&dtos, batchSize).Error
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notificationId", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Updates(map[string]any{
			"is_read": n.IsRead(),
			"read_at": n.ReadAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", n.ID().String())
	}
	return nil
}

func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, at time.Time) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = ?", userID.Bytes(), false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": at,
		})
	return result.RowsAffected, result.Error
}
