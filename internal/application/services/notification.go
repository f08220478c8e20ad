package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	domain "pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/mq"
)

type NotificationService struct {
	notificationRepository domain.Repository
	logger                 *zap.Logger
	mCounter               *prometheus.CounterVec
	now                    func() time.Time
}

func NewNotificationService(
	notificationRepository domain.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
		mCounter:               mCounter,
		now:                    time.Now,
	}
}

func (ns *NotificationService) Record(ctx context.Context, e domain.Entry) (*domain.Notification, error) {
	if e.UserID == uuid.Nil || e.EntityType == "" || e.Action == "" {
		return nil, fmt.Errorf("%w: user, entity type and action are required", ErrValidation)
	}

	n, err := ns.notificationRepository.CreateNotification(ctx, &domain.Notification{
		UserID:     e.UserID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Action:     e.Action,
		EntityName: e.EntityName,
		Message:    domain.BuildMessage(e),
		Metadata:   e.Metadata,
	})
	if err != nil {
		return nil, err
	}

	ns.mCounter.WithLabelValues("notifications_recorded_total").Inc()

	return n, nil
}

// HandleEvent is the consumer side of the event bus.
func (ns *NotificationService) HandleEvent(ctx context.Context, body []byte) error {
	e, err := mq.DecodeEvent(body)
	if err != nil {
		return err
	}

	_, err = ns.Record(ctx, e.ToEntry())
	return err
}

func (ns *NotificationService) FindNotifications(ctx context.Context, userID uuid.UUID, pg, limit int) (domain.Notifications, page.Meta, error) {
	items, total, err := ns.notificationRepository.FetchNotifications(ctx, userID, pg, limit)
	if err != nil {
		return nil, page.Meta{}, err
	}
	if items == nil {
		items = domain.Notifications{}
	}

	return items, page.NewMeta(pg, limit, total), nil
}

// SweepOlderThan deletes notifications of every user created more than days ago.
func (ns *NotificationService) SweepOlderThan(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		return 0, fmt.Errorf("%w: days must be >= 1", ErrValidation)
	}

	before := ns.now().UTC().AddDate(0, 0, -days)
	n, err := ns.notificationRepository.DeleteOlderThan(ctx, before)
	if err != nil {
		return 0, err
	}

	ns.logger.Info("notifications swept", zap.Int("days", days), zap.Time("before", before), zap.Int64("deleted", n))

	return n, nil
}
