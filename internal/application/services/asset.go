package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	domain "pim-api/internal/domain/asset"
	"pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/mq"
	"pim-api/internal/infrastructure/s3"
)

type AssetService struct {
	storage         ports.Storage
	assetRepository domain.Repository
	groupRepository asset_group.Repository
	aggregator      ports.GroupAggregator
	mq              ports.EventPublisher
	logger          *zap.Logger
	mCounter        *prometheus.CounterVec
}

func NewAssetService(
	storage ports.Storage,
	assetRepository domain.Repository,
	groupRepository asset_group.Repository,
	aggregator ports.GroupAggregator,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.AssetService {
	return &AssetService{
		storage:         storage,
		assetRepository: assetRepository,
		groupRepository: groupRepository,
		aggregator:      aggregator,
		mq:              mq,
		logger:          logger,
		mCounter:        mCounter,
	}
}

// UploadAsset stores the file first and inserts the row only after the provider accepted it.
func (as *AssetService) UploadAsset(ctx context.Context, in ports.UploadAsset) (*domain.Asset, error) {
	if in.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: authenticated user is required", ErrValidation)
	}
	if in.File == nil {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}
	if err := as.ensureGroup(ctx, in.UserID, in.AssetGroupID); err != nil {
		return nil, err
	}

	original := displayName(in.File.Filename)
	safeName := sanitizeFileName(original)
	mimeType := contentType(in.File.Header.Get("Content-Type"), original)

	f, err := in.File.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	res, err := as.storage.Upload(ctx, f, mimeType, s3.UploadOptions{
		Key:      storageKey(in.UserID, safeName, time.Now()),
		FileName: original,
		Size:     in.File.Size,
	})
	if err != nil {
		as.mCounter.WithLabelValues("asset_uploads_failed_total").Inc()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = original
	}
	size := res.ByteSize
	if size <= 0 {
		size = in.File.Size
	}

	a, err := as.assetRepository.CreateAsset(ctx, &domain.Asset{
		UserID:       in.UserID,
		Name:         name,
		FileName:     res.StoredName,
		StorageKey:   res.ProviderID,
		MimeType:     mimeType,
		Size:         size,
		AssetGroupID: in.AssetGroupID,
	})
	if err != nil {
		as.discardObject(ctx, res.ProviderID)
		return nil, err
	}

	as.aggregator.Refresh(ctx, a.AssetGroupID)
	as.publish(a, notification.ActionUploaded, map[string]any{
		"size":     strconv.FormatInt(a.Size, 10),
		"mimeType": a.MimeType,
	})
	as.mCounter.WithLabelValues("assets_uploaded_total").Inc()

	return as.withURL(a), nil
}

func (as *AssetService) FindAsset(ctx context.Context, userID, id uuid.UUID) (*domain.Asset, error) {
	a, err := as.assetRepository.FetchAsset(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: asset %s", ErrNotFound, id)
	}

	return as.withURL(a), nil
}

func (as *AssetService) FindAssets(ctx context.Context, f domain.Filter) (domain.Assets, page.Meta, error) {
	f = f.WithDefaults()
	if err := f.Validate(); err != nil {
		return nil, page.Meta{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	items, total, err := as.assetRepository.FetchAssets(ctx, f)
	if err != nil {
		return nil, page.Meta{}, err
	}
	for _, a := range items {
		as.withURL(a)
	}
	if items == nil {
		items = domain.Assets{}
	}

	return items, page.NewMeta(f.Page, f.Limit, total), nil
}

// UpdateAsset recomputes both sides of a group change, and neither when the group stays.
func (as *AssetService) UpdateAsset(ctx context.Context, userID, id uuid.UUID, p domain.Patch) (*domain.Asset, error) {
	current, err := as.assetRepository.FetchAsset(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w: asset %s", ErrNotFound, id)
	}

	next := *current
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		next.Name = name
	}

	groupChanged := p.GroupSet && !domain.SameGroup(current.AssetGroupID, p.AssetGroupID)
	if groupChanged {
		if err = as.ensureGroup(ctx, userID, p.AssetGroupID); err != nil {
			return nil, err
		}
		next.AssetGroupID = p.AssetGroupID
	}

	out, err := as.assetRepository.UpdateAsset(ctx, &next)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: asset %s", ErrNotFound, id)
	}

	meta := map[string]any{}
	if groupChanged {
		as.aggregator.Refresh(ctx, current.AssetGroupID)
		as.aggregator.Refresh(ctx, out.AssetGroupID)
		meta["previousGroupId"] = groupString(current.AssetGroupID)
		meta["assetGroupId"] = groupString(out.AssetGroupID)
	}
	as.publish(out, notification.ActionUpdated, meta)

	return as.withURL(out), nil
}

// DeleteAsset removes the row even when the remote object cannot be deleted.
func (as *AssetService) DeleteAsset(ctx context.Context, userID, id uuid.UUID) error {
	current, err := as.assetRepository.FetchAsset(ctx, userID, id)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("%w: asset %s", ErrNotFound, id)
	}

	as.discardObject(ctx, current.StorageKey)

	deleted, err := as.assetRepository.DeleteAsset(ctx, userID, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fmt.Errorf("%w: asset %s", ErrNotFound, id)
	}

	as.aggregator.Refresh(ctx, deleted.AssetGroupID)
	as.publish(deleted, notification.ActionDeleted, nil)
	as.mCounter.WithLabelValues("assets_deleted_total").Inc()

	return nil
}

func (as *AssetService) ensureGroup(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}

	g, err := as.groupRepository.FetchAssetGroup(ctx, userID, *groupID)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("%w: asset group %s", ErrNotFound, groupID)
	}

	return nil
}

func (as *AssetService) discardObject(ctx context.Context, key string) {
	if err := as.storage.Delete(ctx, key); err != nil {
		as.logger.Warn("remote object delete failed", zap.String("storage_key", key), zap.Error(err))
	}
}

func (as *AssetService) withURL(a *domain.Asset) *domain.Asset {
	a.URL = as.storage.ResolveURL(a.StorageKey)
	return a
}

func (as *AssetService) publish(a *domain.Asset, action notification.Action, meta map[string]any) {
	id, name := a.ID, a.Name
	as.mq.Publish(mq.NewEvent(notification.Entry{
		UserID:     a.UserID,
		EntityType: notification.EntityAsset,
		EntityID:   &id,
		Action:     action,
		EntityName: &name,
		Metadata:   meta,
	}))
}

func groupString(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
