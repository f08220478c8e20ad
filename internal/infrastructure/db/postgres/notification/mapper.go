package notification

import (
	domain "pim-api/internal/domain/notification"
)

func fromDBModel(model *Notification) *domain.Notification {
	meta := model.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	return &domain.Notification{
		ID:     model.ID,
		UserID: model.UserID,

		EntityType: domain.EntityType(model.EntityType),
		EntityID:   model.EntityID,
		Action:     domain.Action(model.Action),
		EntityName: model.EntityName,
		Message:    model.Message,
		Metadata:   meta,

		CreatedAt: model.CreatedAt,
	}
}

func fromDBModels(models Notifications) domain.Notifications {
	ns := make(domain.Notifications, len(models))
	for idx, n := range models {
		ns[idx] = fromDBModel(n)
	}

	return ns
}
