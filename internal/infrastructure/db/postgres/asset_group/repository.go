package asset_group

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) asset_group.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAssetGroup(ctx context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error) {
	return r.queryOne(ctx, SelectAssetGroup, id, userID)
}

func (r *Repository) FetchAssetGroups(ctx context.Context, userID uuid.UUID, pg, limit int) (asset_group.AssetGroups, int64, error) {
	var (
		items AssetGroups
		total int64
	)

	g, gctx := postgres.ListGroup(ctx, r.db)
	g.Go(func() error {
		rows, err := r.db.Query(gctx, SelectAssetGroups, userID, limit, page.Offset(pg, limit))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			ag := new(AssetGroup)
			if err = rows.Scan(ag.scanTargets()...); err != nil {
				return err
			}
			items = append(items, ag)
		}
		return rows.Err()
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, CountAssetGroups, userID).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(items), total, nil
}

func (r *Repository) CreateAssetGroup(ctx context.Context, req *asset_group.AssetGroup) (*asset_group.AssetGroup, error) {
	ag := new(AssetGroup)
	if err := r.db.QueryRow(ctx, InsertAssetGroup, req.UserID, req.Name, req.Description).Scan(ag.scanTargets()...); err != nil {
		return nil, err
	}

	return fromDBModel(ag), nil
}

func (r *Repository) UpdateAssetGroup(ctx context.Context, req *asset_group.AssetGroup) (*asset_group.AssetGroup, error) {
	return r.queryOne(ctx, UpdateAssetGroup, req.ID, req.UserID, req.Name, req.Description)
}

func (r *Repository) DeleteAssetGroup(ctx context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error) {
	return r.queryOne(ctx, DeleteAssetGroup, id, userID)
}

// RecomputeTotalSize returns pgx.ErrNoRows when the group no longer exists.
func (r *Repository) RecomputeTotalSize(ctx context.Context, id uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, RecomputeTotalSize, id).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) FetchGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if userID == uuid.Nil {
		rows, err = r.db.Query(ctx, SelectAllGroupIDs)
	} else {
		rows, err = r.db.Query(ctx, SelectGroupIDsByUser, userID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) queryOne(ctx context.Context, sql string, args ...any) (*asset_group.AssetGroup, error) {
	ag := new(AssetGroup)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(ag.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(ag), nil
}
