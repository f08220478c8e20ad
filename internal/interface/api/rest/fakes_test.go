package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pim-api/internal/application/ports"
	"pim-api/internal/domain/asset"
	"pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/family"
	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
)

var errNotUsed = errors.New("not used")

type FakeAssetService struct {
	UploadAssetFunc func(ctx context.Context, in ports.UploadAsset) (*asset.Asset, error)
	FindAssetFunc   func(ctx context.Context, userID, id uuid.UUID) (*asset.Asset, error)
	FindAssetsFunc  func(ctx context.Context, f asset.Filter) (asset.Assets, page.Meta, error)
	UpdateAssetFunc func(ctx context.Context, userID, id uuid.UUID, p asset.Patch) (*asset.Asset, error)
	DeleteAssetFunc func(ctx context.Context, userID, id uuid.UUID) error
}

func (f *FakeAssetService) UploadAsset(ctx context.Context, in ports.UploadAsset) (*asset.Asset, error) {
	if f.UploadAssetFunc == nil {
		return nil, errNotUsed
	}
	return f.UploadAssetFunc(ctx, in)
}
func (f *FakeAssetService) FindAsset(ctx context.Context, userID, id uuid.UUID) (*asset.Asset, error) {
	if f.FindAssetFunc == nil {
		return nil, errNotUsed
	}
	return f.FindAssetFunc(ctx, userID, id)
}
func (f *FakeAssetService) FindAssets(ctx context.Context, flt asset.Filter) (asset.Assets, page.Meta, error) {
	if f.FindAssetsFunc == nil {
		return nil, page.Meta{}, errNotUsed
	}
	return f.FindAssetsFunc(ctx, flt)
}
func (f *FakeAssetService) UpdateAsset(ctx context.Context, userID, id uuid.UUID, p asset.Patch) (*asset.Asset, error) {
	if f.UpdateAssetFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateAssetFunc(ctx, userID, id, p)
}
func (f *FakeAssetService) DeleteAsset(ctx context.Context, userID, id uuid.UUID) error {
	if f.DeleteAssetFunc == nil {
		return errNotUsed
	}
	return f.DeleteAssetFunc(ctx, userID, id)
}

type FakeAssetGroupService struct {
	CreateFunc    func(ctx context.Context, userID uuid.UUID, name, description string) (*asset_group.AssetGroup, error)
	FindFunc      func(ctx context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error)
	FindAllFunc   func(ctx context.Context, userID uuid.UUID, pg, limit int) (asset_group.AssetGroups, page.Meta, error)
	UpdateFunc    func(ctx context.Context, userID, id uuid.UUID, p asset_group.Patch) (*asset_group.AssetGroup, error)
	DeleteFunc    func(ctx context.Context, userID, id uuid.UUID) error
	ReconcileFunc func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (f *FakeAssetGroupService) CreateAssetGroup(ctx context.Context, userID uuid.UUID, name, description string) (*asset_group.AssetGroup, error) {
	if f.CreateFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFunc(ctx, userID, name, description)
}
func (f *FakeAssetGroupService) FindAssetGroup(ctx context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error) {
	if f.FindFunc == nil {
		return nil, errNotUsed
	}
	return f.FindFunc(ctx, userID, id)
}
func (f *FakeAssetGroupService) FindAssetGroups(ctx context.Context, userID uuid.UUID, pg, limit int) (asset_group.AssetGroups, page.Meta, error) {
	if f.FindAllFunc == nil {
		return nil, page.Meta{}, errNotUsed
	}
	return f.FindAllFunc(ctx, userID, pg, limit)
}
func (f *FakeAssetGroupService) UpdateAssetGroup(ctx context.Context, userID, id uuid.UUID, p asset_group.Patch) (*asset_group.AssetGroup, error) {
	if f.UpdateFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFunc(ctx, userID, id, p)
}
func (f *FakeAssetGroupService) DeleteAssetGroup(ctx context.Context, userID, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, userID, id)
}
func (f *FakeAssetGroupService) ReconcileAssetGroups(ctx context.Context, userID uuid.UUID) (int, error) {
	if f.ReconcileFunc == nil {
		return 0, errNotUsed
	}
	return f.ReconcileFunc(ctx, userID)
}

type FakeFamilyService struct {
	CreateFunc  func(ctx context.Context, fam family.Family) (*family.Family, error)
	FindFunc    func(ctx context.Context, userID, id uuid.UUID) (*family.Family, error)
	FindAllFunc func(ctx context.Context, userID uuid.UUID, search string, pg, limit int) (family.Families, page.Meta, error)
	UpdateFunc  func(ctx context.Context, userID, id uuid.UUID, p family.Patch) (*family.Family, error)
	DeleteFunc  func(ctx context.Context, userID, id uuid.UUID) error
}

func (f *FakeFamilyService) CreateFamily(ctx context.Context, fam family.Family) (*family.Family, error) {
	if f.CreateFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFunc(ctx, fam)
}
func (f *FakeFamilyService) FindFamily(ctx context.Context, userID, id uuid.UUID) (*family.Family, error) {
	if f.FindFunc == nil {
		return nil, errNotUsed
	}
	return f.FindFunc(ctx, userID, id)
}
func (f *FakeFamilyService) FindFamilies(ctx context.Context, userID uuid.UUID, search string, pg, limit int) (family.Families, page.Meta, error) {
	if f.FindAllFunc == nil {
		return nil, page.Meta{}, errNotUsed
	}
	return f.FindAllFunc(ctx, userID, search, pg, limit)
}
func (f *FakeFamilyService) UpdateFamily(ctx context.Context, userID, id uuid.UUID, p family.Patch) (*family.Family, error) {
	if f.UpdateFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFunc(ctx, userID, id, p)
}
func (f *FakeFamilyService) DeleteFamily(ctx context.Context, userID, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, userID, id)
}

type FakeNotificationService struct {
	FindFunc  func(ctx context.Context, userID uuid.UUID, pg, limit int) (notification.Notifications, page.Meta, error)
	SweepFunc func(ctx context.Context, days int) (int64, error)
}

func (f *FakeNotificationService) Record(context.Context, notification.Entry) (*notification.Notification, error) {
	return nil, errNotUsed
}
func (f *FakeNotificationService) FindNotifications(ctx context.Context, userID uuid.UUID, pg, limit int) (notification.Notifications, page.Meta, error) {
	if f.FindFunc == nil {
		return nil, page.Meta{}, errNotUsed
	}
	return f.FindFunc(ctx, userID, pg, limit)
}
func (f *FakeNotificationService) SweepOlderThan(ctx context.Context, days int) (int64, error) {
	if f.SweepFunc == nil {
		return 0, errNotUsed
	}
	return f.SweepFunc(ctx, days)
}
func (f *FakeNotificationService) HandleEvent(context.Context, []byte) error { return errNotUsed }

type FakeSupportService struct {
	SubmitFunc func(ctx context.Context, t ports.SupportTicket) (uuid.UUID, error)
}

func (f *FakeSupportService) SubmitTicket(ctx context.Context, t ports.SupportTicket) (uuid.UUID, error) {
	if f.SubmitFunc == nil {
		return uuid.Nil, errNotUsed
	}
	return f.SubmitFunc(ctx, t)
}
