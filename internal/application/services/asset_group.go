package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"pim-api/internal/application/ports"
	domain "pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/mq"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 2000
)

type AssetGroupService struct {
	groupRepository domain.Repository
	aggregator      ports.GroupAggregator
	mq              ports.EventPublisher
	mCounter        *prometheus.CounterVec
}

func NewAssetGroupService(
	groupRepository domain.Repository,
	aggregator ports.GroupAggregator,
	mq ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) ports.AssetGroupService {
	return &AssetGroupService{
		groupRepository: groupRepository,
		aggregator:      aggregator,
		mq:              mq,
		mCounter:        mCounter,
	}
}

func (gs *AssetGroupService) CreateAssetGroup(ctx context.Context, userID uuid.UUID, name, description string) (*domain.AssetGroup, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description is too long", ErrValidation)
	}

	g, err := gs.groupRepository.CreateAssetGroup(ctx, &domain.AssetGroup{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return nil, err
	}

	gs.publish(g, notification.ActionCreated)
	gs.mCounter.WithLabelValues("asset_groups_created_total").Inc()

	return g, nil
}

func (gs *AssetGroupService) FindAssetGroup(ctx context.Context, userID, id uuid.UUID) (*domain.AssetGroup, error) {
	g, err := gs.groupRepository.FetchAssetGroup(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: asset group %s", ErrNotFound, id)
	}

	return g, nil
}

func (gs *AssetGroupService) FindAssetGroups(ctx context.Context, userID uuid.UUID, pg, limit int) (domain.AssetGroups, page.Meta, error) {
	items, total, err := gs.groupRepository.FetchAssetGroups(ctx, userID, pg, limit)
	if err != nil {
		return nil, page.Meta{}, err
	}
	if items == nil {
		items = domain.AssetGroups{}
	}

	return items, page.NewMeta(pg, limit, total), nil
}

func (gs *AssetGroupService) UpdateAssetGroup(ctx context.Context, userID, id uuid.UUID, p domain.Patch) (*domain.AssetGroup, error) {
	g, err := gs.FindAssetGroup(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	next := *g
	if p.Name != nil {
		if next.Name, err = requireName(*p.Name); err != nil {
			return nil, err
		}
	}
	if p.Description != nil {
		if utf8.RuneCountInString(*p.Description) > maxDescriptionLen {
			return nil, fmt.Errorf("%w: description is too long", ErrValidation)
		}
		next.Description = strings.TrimSpace(*p.Description)
	}

	out, err := gs.groupRepository.UpdateAssetGroup(ctx, &next)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: asset group %s", ErrNotFound, id)
	}

	gs.publish(out, notification.ActionUpdated)

	return out, nil
}

// DeleteAssetGroup detaches members through ON DELETE SET NULL.
func (gs *AssetGroupService) DeleteAssetGroup(ctx context.Context, userID, id uuid.UUID) error {
	g, err := gs.groupRepository.DeleteAssetGroup(ctx, userID, id)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("%w: asset group %s", ErrNotFound, id)
	}

	gs.publish(g, notification.ActionDeleted)

	return nil
}

func (gs *AssetGroupService) ReconcileAssetGroups(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, fmt.Errorf("%w: authenticated user is required", ErrValidation)
	}
	return gs.aggregator.ReconcileAll(ctx, userID)
}

func (gs *AssetGroupService) publish(g *domain.AssetGroup, action notification.Action) {
	id, name := g.ID, g.Name
	gs.mq.Publish(mq.NewEvent(notification.Entry{
		UserID:     g.UserID,
		EntityType: notification.EntityAssetGroup,
		EntityID:   &id,
		Action:     action,
		EntityName: &name,
	}))
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", fmt.Errorf("%w: name is too long", ErrValidation)
	}
	return name, nil
}
