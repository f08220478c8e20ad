package asset_group

import (
	"time"

	"github.com/google/uuid"
)

type (
	AssetGroup struct {
		ID     uuid.UUID
		UserID uuid.UUID

		Name        string
		Description string
		// TotalSize is a cache of the members' sizes, maintained by recomputation only.
		TotalSize int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	AssetGroups []*AssetGroup

	// Patch carries a partial update, nil fields are left unchanged.
	Patch struct {
		Name        *string
		Description *string
	}
)
