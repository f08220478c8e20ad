package mq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pim-api/internal/domain/notification"
)

var ErrMalformedEvent = errors.New("malformed event")

// Event is the wire form of a notification entry.
type Event struct {
	ID         uuid.UUID      `json:"event_id"`
	TS         time.Time      `json:"time_stamp"`
	UserID     uuid.UUID      `json:"user_id"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Action     string         `json:"event_action"`
	EntityName *string        `json:"entity_name,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func NewEvent(e notification.Entry) Event {
	return Event{
		ID:         uuid.New(),
		TS:         time.Now().UTC(),
		UserID:     e.UserID,
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID,
		Action:     string(e.Action),
		EntityName: e.EntityName,
		Metadata:   e.Metadata,
	}
}

func DecodeEvent(b []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(b, &e); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if e.UserID == uuid.Nil || e.EntityType == "" || e.Action == "" {
		return Event{}, fmt.Errorf("%w: user_id, entity_type and event_action are required", ErrMalformedEvent)
	}

	return e, nil
}

func (e Event) ToEntry() notification.Entry {
	return notification.Entry{
		UserID:     e.UserID,
		EntityType: notification.EntityType(e.EntityType),
		EntityID:   e.EntityID,
		Action:     notification.Action(e.Action),
		EntityName: e.EntityName,
		Metadata:   e.Metadata,
	}
}

// RoutingKeys are the actions events are published under.
func RoutingKeys() []string {
	keys := make([]string, len(notification.Actions))
	for i, a := range notification.Actions {
		keys[i] = string(a)
	}
	return keys
}
