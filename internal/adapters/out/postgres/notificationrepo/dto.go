package notificationrepo

import (
	"time"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Type      string            `gorm:"type:varchar(30);not null"`
	Title     string            `gorm:"type:varchar(255);not null"`
	Message   string            `gorm:"type:text"`
	Data      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	IsRead    bool              `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      datatypes.JSONMap(n.Data()),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := pgtypes.ToUUID(dto.UserID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(
		id,
		userID,
		notification.Type(dto.Type),
		dto.Title,
		dto.Message,
		map[string]any(dto.Data),
		dto.IsRead,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
