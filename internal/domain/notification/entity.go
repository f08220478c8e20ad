package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	EntityType string
	Action     string
)

const (
	EntityAsset         EntityType = "asset"
	EntityAssetGroup    EntityType = "asset_group"
	EntityFamily        EntityType = "family"
	EntitySupportTicket EntityType = "support_ticket"

	ActionCreated   Action = "created"
	ActionUploaded  Action = "uploaded"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionSubmitted Action = "submitted"
)

// Actions is the full set of actions, used as routing keys on the event bus.
var Actions = []Action{ActionCreated, ActionUploaded, ActionUpdated, ActionDeleted, ActionSubmitted}

type (
	// Entry is what a producer reports; Notification is the stored record.
	Entry struct {
		UserID     uuid.UUID
		EntityType EntityType
		EntityID   *uuid.UUID
		Action     Action
		EntityName *string
		Metadata   map[string]any
	}

	Notification struct {
		ID         uuid.UUID
		UserID     uuid.UUID
		EntityType EntityType
		EntityID   *uuid.UUID
		Action     Action
		EntityName *string
		Message    string
		Metadata   map[string]any
		CreatedAt  time.Time
	}
	Notifications []*Notification
)

type Repository interface {
	CreateNotification(ctx context.Context, req *Notification) (*Notification, error)
	FetchNotifications(ctx context.Context, userID uuid.UUID, page, limit int) (Notifications, int64, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

var entityLabels = map[EntityType]string{
	EntityAsset:         "Asset",
	EntityAssetGroup:    "Asset group",
	EntityFamily:        "Family",
	EntitySupportTicket: "Support ticket",
}

var templates = map[EntityType]map[Action]string{
	EntityAsset: {
		ActionUploaded: "Asset %s was uploaded",
		ActionCreated:  "Asset %s was created",
		ActionUpdated:  "Asset %s was updated",
		ActionDeleted:  "Asset %s was deleted",
	},
	EntityAssetGroup: {
		ActionCreated: "Asset group %s was created",
		ActionUpdated: "Asset group %s was updated",
		ActionDeleted: "Asset group %s was deleted",
	},
	EntityFamily: {
		ActionCreated: "Family %s was created",
		ActionUpdated: "Family %s was updated",
		ActionDeleted: "Family %s was deleted",
	},
	EntitySupportTicket: {
		ActionSubmitted: "Support ticket %s was submitted",
	},
}

// BuildMessage renders the human-readable line for (entity type, action).
// The entity name is quoted verbatim; without one its slot is dropped.
func BuildMessage(e Entry) string {
	name := ""
	if e.EntityName != nil && *e.EntityName != "" {
		name = fmt.Sprintf("%q", *e.EntityName)
	}

	if tpl, ok := templates[e.EntityType][e.Action]; ok {
		if name == "" {
			return strings.Replace(tpl, " %s", "", 1)
		}
		return fmt.Sprintf(tpl, name)
	}

	label, ok := entityLabels[e.EntityType]
	if !ok {
		label = strings.ReplaceAll(string(e.EntityType), "_", " ")
		if label != "" {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{label, name, string(e.Action)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
