package asset

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pim-api/internal/domain/asset"
	"pim-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) asset.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAsset(ctx context.Context, userID, id uuid.UUID) (*asset.Asset, error) {
	return r.queryOne(ctx, SelectAsset, id, userID)
}

// FetchAssets returns one page of matching assets plus the unpaged match count.
// Items and count are queried concurrently.
func (r *Repository) FetchAssets(ctx context.Context, f asset.Filter) (asset.Assets, int64, error) {
	where, args := buildWhere(f, 1)
	limit, limitArgs := buildLimit(f, len(args)+1)

	var (
		items Assets
		total int64
	)

	g, gctx := postgres.ListGroup(ctx, r.db)
	g.Go(func() error {
		rows, err := r.db.Query(gctx, SelectAssets+where+buildOrderBy(f)+limit, append(append([]any{}, args...), limitArgs...)...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a := new(Asset)
			if err = rows.Scan(a.scanTargets()...); err != nil {
				return err
			}
			items = append(items, a)
		}
		return rows.Err()
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, CountAssets+where, args...).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(items), total, nil
}

func (r *Repository) CreateAsset(ctx context.Context, req *asset.Asset) (*asset.Asset, error) {
	a := new(Asset)

	err := r.db.QueryRow(
		ctx,
		InsertAsset,
		req.UserID, req.Name, req.FileName, req.StorageKey, req.MimeType, req.Size, req.AssetGroupID,
	).Scan(a.scanTargets()...)
	if err != nil {
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) UpdateAsset(ctx context.Context, req *asset.Asset) (*asset.Asset, error) {
	return r.queryOne(ctx, UpdateAsset, req.ID, req.UserID, req.Name, req.AssetGroupID)
}

func (r *Repository) DeleteAsset(ctx context.Context, userID, id uuid.UUID) (*asset.Asset, error) {
	return r.queryOne(ctx, DeleteAsset, id, userID)
}

func (r *Repository) queryOne(ctx context.Context, sql string, args ...any) (*asset.Asset, error) {
	a := new(Asset)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(a.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}
