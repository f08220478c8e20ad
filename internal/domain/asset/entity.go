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

		// URL is resolved from StorageKey by the storage provider, it is not persisted.
		URL string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Assets []*Asset

	// Patch carries a partial update. GroupSet distinguishes "leave the group
	// alone" from an explicit assignment, where a nil AssetGroupID detaches.
	Patch struct {
		Name         *string
		GroupSet     bool
		AssetGroupID *uuid.UUID
	}
)

func (a *Asset) InGroup() bool { return a.AssetGroupID != nil }

// SameGroup reports whether two optional group ids point at the same group.
func SameGroup(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
