package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/domain/asset_group"
)

type Aggregator struct {
	groupRepository asset_group.Repository
	logger          *zap.Logger
}

func NewAggregator(groupRepository asset_group.Repository, logger *zap.Logger) ports.GroupAggregator {
	return &Aggregator{
		groupRepository: groupRepository,
		logger:          logger,
	}
}

// Refresh recomputes the total size of groupID. A nil id is a no-op.
// Failures never reach the caller.
func (a *Aggregator) Refresh(ctx context.Context, groupID *uuid.UUID) {
	if groupID == nil {
		return
	}

	total, err := a.groupRepository.RecomputeTotalSize(context.WithoutCancel(ctx), *groupID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		a.logger.Warn("group vanished before recompute", zap.String("group_id", groupID.String()))
	case err != nil:
		a.logger.Error("group total size recompute failed", zap.String("group_id", groupID.String()), zap.Error(err))
	default:
		a.logger.Debug("group total size recomputed", zap.String("group_id", groupID.String()), zap.Int64("total_size", total))
	}
}

// ReconcileAll recomputes every group of userID, or of every user when userID is uuid.Nil.
// It returns the number of groups visited.
func (a *Aggregator) ReconcileAll(ctx context.Context, userID uuid.UUID) (int, error) {
	ids, err := a.groupRepository.FetchGroupIDs(ctx, userID)
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		id := id
		a.Refresh(ctx, &id)
	}

	a.logger.Info("asset groups reconciled", zap.Int("groups", len(ids)))

	return len(ids), nil
}
