package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) notification.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateNotification(ctx context.Context, req *notification.Notification) (*notification.Notification, error) {
	meta := req.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	n := new(Notification)
	err := r.db.QueryRow(
		ctx,
		InsertNotification,
		req.UserID, string(req.EntityType), req.EntityID, string(req.Action), req.EntityName, req.Message, meta,
	).Scan(n.scanTargets()...)
	if err != nil {
		return nil, err
	}

	return fromDBModel(n), nil
}

func (r *Repository) FetchNotifications(ctx context.Context, userID uuid.UUID, pg, limit int) (notification.Notifications, int64, error) {
	var (
		items Notifications
		total int64
	)

	g, gctx := postgres.ListGroup(ctx, r.db)
	g.Go(func() error {
		rows, err := r.db.Query(gctx, SelectNotifications, userID, limit, page.Offset(pg, limit))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			n := new(Notification)
			if err = rows.Scan(n.scanTargets()...); err != nil {
				return err
			}
			items = append(items, n)
		}
		return rows.Err()
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, CountNotifications, userID).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(items), total, nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, DeleteNotificationsBefore, before)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
