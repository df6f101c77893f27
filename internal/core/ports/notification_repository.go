package ports

import (
	"context"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// AddBatch stores a broadcast in one batched insert.
	AddBatch(ctx context.Context, ns []*notification.Notification) error

	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	Update(ctx context.Context, n *notification.Notification) error

	// MarkAllRead flags every unread notification of the user and returns
	// how many changed.
	MarkAllRead(ctx context.Context, userID kernel.UUID, at time.Time) (int64, error)
}
