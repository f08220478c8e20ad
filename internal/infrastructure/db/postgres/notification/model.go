package notification

import (
	"time"

	"github.com/google/uuid"
)

type (
	Notification struct {
		ID     uuid.UUID
		UserID uuid.UUID

		EntityType string
		EntityID   *uuid.UUID
		Action     string
		EntityName *string
		Message    string
		Metadata   map[string]any

		CreatedAt time.Time
	}
	Notifications []*Notification
)

func (n *Notification) scanTargets() []any {
	return []any{
		&n.ID,
		&n.UserID,

		&n.EntityType,
		&n.EntityID,
		&n.Action,
		&n.EntityName,
		&n.Message,
		&n.Metadata,

		&n.CreatedAt,
	}
}
