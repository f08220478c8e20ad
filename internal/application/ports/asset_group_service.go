package ports

import (
	"context"

	"github.com/google/uuid"

	"pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/page"
)

type (
	AssetGroupService interface {
		CreateAssetGroup(ctx context.Context, userID uuid.UUID, name, description string) (*asset_group.AssetGroup, error)
		FindAssetGroup(ctx context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error)
		FindAssetGroups(ctx context.Context, userID uuid.UUID, pg, limit int) (asset_group.AssetGroups, page.Meta, error)
		UpdateAssetGroup(ctx context.Context, userID, id uuid.UUID, p asset_group.Patch) (*asset_group.AssetGroup, error)
		DeleteAssetGroup(ctx context.Context, userID, id uuid.UUID) error
		ReconcileAssetGroups(ctx context.Context, userID uuid.UUID) (int, error)
	}

	// GroupAggregator keeps asset_groups.total_size equal to the members' sizes.
	GroupAggregator interface {
		Refresh(ctx context.Context, groupID *uuid.UUID)
		ReconcileAll(ctx context.Context, userID uuid.UUID) (int, error)
	}
)
