package notification

import (
	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
	"pim-api/internal/interface/api/rest/dto/pagination"
)

func ToResponseNotification(n notification.Notification) Notification {
	meta := n.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	return Notification{
		ID:         n.ID,
		EntityType: string(n.EntityType),
		EntityID:   n.EntityID,
		Action:     string(n.Action),
		EntityName: n.EntityName,
		Message:    n.Message,
		Metadata:   meta,
		CreatedAt:  n.CreatedAt,
	}
}

func ToResponseNotifications(nDomain notification.Notifications, meta page.Meta) ResponseData {
	out := make(Notifications, len(nDomain))
	for idx, n := range nDomain {
		out[idx] = ToResponseNotification(*n)
	}

	return ResponseData{Data: out, Meta: pagination.ToResponseMeta(meta)}
}
