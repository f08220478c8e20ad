package notification

import (
	"time"

	"github.com/google/uuid"

	"pim-api/internal/interface/api/rest/dto/pagination"
)

type (
	Notification struct {
		ID         uuid.UUID      `json:"id"`
		EntityType string         `json:"entityType"`
		EntityID   *uuid.UUID     `json:"entityId"`
		Action     string         `json:"action"`
		EntityName *string        `json:"entityName"`
		Message    string         `json:"message"`
		Metadata   map[string]any `json:"metadata"`
		CreatedAt  time.Time      `json:"createdAt"`
	}
	Notifications []Notification
	ResponseData  struct {
		Data Notifications   `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	SweepResponse struct {
		Deleted int64 `json:"deleted"`
	}
)
