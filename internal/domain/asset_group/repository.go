package asset_group

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	FetchAssetGroup(ctx context.Context, userID, id uuid.UUID) (*AssetGroup, error)
	FetchAssetGroups(ctx context.Context, userID uuid.UUID, page, limit int) (AssetGroups, int64, error)
	CreateAssetGroup(ctx context.Context, req *AssetGroup) (*AssetGroup, error)
	UpdateAssetGroup(ctx context.Context, req *AssetGroup) (*AssetGroup, error)
	DeleteAssetGroup(ctx context.Context, userID, id uuid.UUID) (*AssetGroup, error)

	// RecomputeTotalSize overwrites total_size with the current SUM of member sizes.
	RecomputeTotalSize(ctx context.Context, id uuid.UUID) (int64, error)
	// FetchGroupIDs lists group ids of one user, or of every user when userID is uuid.Nil.
	FetchGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
