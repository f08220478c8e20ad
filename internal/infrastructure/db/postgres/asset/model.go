package asset

import (
	"time"

	"github.com/google/uuid"
)

type (
	Asset struct {
		ID     uuid.UUID
		UserID uuid.UUID

		Name         string
		FileName     string
		StorageKey   string
		MimeType     string
		Size         int64
		AssetGroupID *uuid.UUID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Assets []*Asset
)

func (a *Asset) scanTargets() []any {
	return []any{
		&a.ID,
		&a.UserID,

		&a.Name,
		&a.FileName,
		&a.StorageKey,
		&a.MimeType,
		&a.Size,
		&a.AssetGroupID,

		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
