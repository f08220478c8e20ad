package ports

import (
	"context"

	"github.com/google/uuid"

	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
)

type NotificationService interface {
	Record(ctx context.Context, e notification.Entry) (*notification.Notification, error)
	FindNotifications(ctx context.Context, userID uuid.UUID, pg, limit int) (notification.Notifications, page.Meta, error)
	SweepOlderThan(ctx context.Context, days int) (int64, error)
	HandleEvent(ctx context.Context, body []byte) error
}
