package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"pim-api/internal/domain/asset"
	"pim-api/internal/domain/page"
)

type (
	UploadAsset struct {
		UserID       uuid.UUID
		Name         string
		AssetGroupID *uuid.UUID
		File         *multipart.FileHeader
	}

	AssetService interface {
		UploadAsset(ctx context.Context, in UploadAsset) (*asset.Asset, error)
		FindAsset(ctx context.Context, userID, id uuid.UUID) (*asset.Asset, error)
		FindAssets(ctx context.Context, f asset.Filter) (asset.Assets, page.Meta, error)
		UpdateAsset(ctx context.Context, userID, id uuid.UUID, p asset.Patch) (*asset.Asset, error)
		DeleteAsset(ctx context.Context, userID, id uuid.UUID) error
	}
)
