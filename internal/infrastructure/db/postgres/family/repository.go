package family

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pim-api/internal/domain/family"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) family.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFamily(ctx context.Context, userID, id uuid.UUID) (*family.Family, error) {
	return r.queryOne(ctx, SelectFamily, id, userID)
}

func (r *Repository) FetchFamilies(ctx context.Context, userID uuid.UUID, search string, pg, limit int) (family.Families, int64, error) {
	pattern := ""
	if search = strings.TrimSpace(search); search != "" {
		pattern = "%" + likeEscaper.Replace(search) + "%"
	}

	var (
		items Families
		total int64
	)

	g, gctx := postgres.ListGroup(ctx, r.db)
	g.Go(func() error {
		rows, err := r.db.Query(gctx, SelectFamilies, userID, pattern, limit, page.Offset(pg, limit))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			f := new(Family)
			if err = rows.Scan(f.scanTargets()...); err != nil {
				return err
			}
			items = append(items, f)
		}
		return rows.Err()
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, CountFamilies, userID, pattern).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(items), total, nil
}

func (r *Repository) CreateFamily(ctx context.Context, req *family.Family) (*family.Family, error) {
	f := new(Family)

	err := r.db.QueryRow(
		ctx,
		InsertFamily,
		req.UserID, req.Code, req.Name, req.Description, toAttributes(req.Attributes),
	).Scan(f.scanTargets()...)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, family.ErrCodeExists
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) UpdateFamily(ctx context.Context, req *family.Family) (*family.Family, error) {
	f, err := r.queryOne(
		ctx,
		UpdateFamily,
		req.ID, req.UserID, req.Code, req.Name, req.Description, toAttributes(req.Attributes),
	)
	if postgres.IsPgUniqueViolation(err) {
		return nil, family.ErrCodeExists
	}

	return f, err
}

func (r *Repository) DeleteFamily(ctx context.Context, userID, id uuid.UUID) (*family.Family, error) {
	return r.queryOne(ctx, DeleteFamily, id, userID)
}

func (r *Repository) queryOne(ctx context.Context, sql string, args ...any) (*family.Family, error) {
	f := new(Family)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(f.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
