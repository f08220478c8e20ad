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
		TotalSize   int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	AssetGroups []*AssetGroup
)

func (g *AssetGroup) scanTargets() []any {
	return []any{
		&g.ID,
		&g.UserID,

		&g.Name,
		&g.Description,
		&g.TotalSize,

		&g.CreatedAt,
		&g.UpdatedAt,
	}
}
