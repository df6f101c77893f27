package queries

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationView struct {
	ID        kernel.UUID
	Type      string
	Title     string
	Message   string
	Data      map[string]any
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

type NotificationsPage struct {
	Items       []NotificationView
	UnreadCount int64
}

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(ctx context.Context, query ListNotificationsQuery) (NotificationsPage, error) {
	if err := query.Validate(); err != nil {
		return NotificationsPage{}, err
	}

	sql := `
		SELECT id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE user_id = ?`
	args := []any{query.userID.Bytes()}
	if query.unreadOnly {
		sql += ` AND is_read = false`
	}
	sql += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, query.limit)

	var rows []struct {
		ID        uuid.UUID
		Type      string
		Title     string
		Message   string
		Data      datatypes.JSONMap
		IsRead    bool
		ReadAt    *time.Time
		CreatedAt time.Time
	}
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return NotificationsPage{}, err
	}

	var unread int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT count(*) FROM notifications WHERE user_id = ? AND is_read = false`,
		query.userID.Bytes(),
	).Scan(&unread).Error
	if err != nil {
		return NotificationsPage{}, err
	}

	page := NotificationsPage{
		Items:       make([]NotificationView, 0, len(rows)),
		UnreadCount: unread,
	}
	for _, r := range rows {
		data := map[string]any(r.Data)
		if data == nil {
			data = map[string]any{}
		}
		page.Items = append(page.Items, NotificationView{
			ID:        kernel.UUIDFromGoogle(r.ID),
			Type:      r.Type,
			Title:     r.Title,
			Message:   r.Message,
			Data:      data,
			IsRead:    r.IsRead,
			ReadAt:    r.ReadAt,
			CreatedAt: r.CreatedAt,
		})
	}
	return page, nil
}
