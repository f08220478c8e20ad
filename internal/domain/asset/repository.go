package asset

import (
	"context"

	"github.com/google/uuid"
)

// Repository methods return (nil, nil) when the row does not exist or is owned by another user.
type Repository interface {
	FetchAsset(ctx context.Context, userID, id uuid.UUID) (*Asset, error)
	FetchAssets(ctx context.Context, f Filter) (Assets, int64, error)
	CreateAsset(ctx context.Context, req *Asset) (*Asset, error)
	UpdateAsset(ctx context.Context, req *Asset) (*Asset, error)
	DeleteAsset(ctx context.Context, userID, id uuid.UUID) (*Asset, error)
}
