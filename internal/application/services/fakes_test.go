package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"pim-api/internal/domain/asset"
	"pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/family"
	"pim-api/internal/domain/notification"
	"pim-api/internal/infrastructure/mail"
	"pim-api/internal/infrastructure/mq"
	"pim-api/internal/infrastructure/s3"
)

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func newFileHeader(t *testing.T, field, name, ct string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
	if ct != "" {
		h.Set("Content-Type", ct)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field][0]
}

// memStore backs the asset and asset group fakes so ON DELETE SET NULL
// and SUM(size) behave like the real schema.
type memStore struct {
	mu            sync.Mutex
	assets        map[uuid.UUID]*asset.Asset
	groups        map[uuid.UUID]*asset_group.AssetGroup
	clock         time.Time
	recomputeErr  error
	recomputeRuns int
}

func newMemStore() *memStore {
	return &memStore{
		assets: map[uuid.UUID]*asset.Asset{},
		groups: map[uuid.UUID]*asset_group.AssetGroup{},
		clock:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) addGroup(userID uuid.UUID, name string) *asset_group.AssetGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tick()
	g := &asset_group.AssetGroup{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: now, UpdatedAt: now}
	s.groups[g.ID] = g
	cp := *g
	return &cp
}

func (s *memStore) total(id uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups[id].TotalSize
}

func (s *memStore) memberSum(id uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, a := range s.assets {
		if a.AssetGroupID != nil && *a.AssetGroupID == id {
			sum += a.Size
		}
	}
	return sum
}

func newMemAsset(userID uuid.UUID, groupID *uuid.UUID, size int64) *asset.Asset {
	return &asset.Asset{ID: uuid.New(), UserID: userID, Name: "a", Size: size, AssetGroupID: groupID}
}

type memAssetRepo struct{ s *memStore }

func (r memAssetRepo) FetchAsset(_ context.Context, userID, id uuid.UUID) (*asset.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[id]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r memAssetRepo) FetchAssets(_ context.Context, f asset.Filter) (asset.Assets, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched asset.Assets
	for _, a := range r.s.assets {
		if a.UserID != f.UserID {
			continue
		}
		if f.AssetGroupID != nil && !asset.SameGroup(a.AssetGroupID, f.AssetGroupID) {
			continue
		}
		if hg := f.GroupPresence(); hg != nil && a.InGroup() != *hg {
			continue
		}
		cp := *a
		matched = append(matched, &cp)
	}

	_, order := f.ResolveSort()
	sort.Slice(matched, func(i, j int) bool {
		if order == asset.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	from := f.Offset()
	if from >= len(matched) {
		return nil, total, nil
	}
	to := from + f.Limit
	if to > len(matched) {
		to = len(matched)
	}
	return matched[from:to], total, nil
}

func (r memAssetRepo) CreateAsset(_ context.Context, req *asset.Asset) (*asset.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := *req
	a.ID = uuid.New()
	a.CreatedAt = r.s.tick()
	a.UpdatedAt = a.CreatedAt
	r.s.assets[a.ID] = &a
	cp := a
	return &cp, nil
}

func (r memAssetRepo) UpdateAsset(_ context.Context, req *asset.Asset) (*asset.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[req.ID]
	if !ok || a.UserID != req.UserID {
		return nil, nil
	}
	a.Name = req.Name
	a.AssetGroupID = req.AssetGroupID
	a.UpdatedAt = r.s.tick()
	cp := *a
	return &cp, nil
}

func (r memAssetRepo) DeleteAsset(_ context.Context, userID, id uuid.UUID) (*asset.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[id]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	delete(r.s.assets, id)
	return a, nil
}

type memGroupRepo struct{ s *memStore }

func (r memGroupRepo) FetchAssetGroup(_ context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[id]
	if !ok || g.UserID != userID {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r memGroupRepo) FetchAssetGroups(_ context.Context, userID uuid.UUID, _, _ int) (asset_group.AssetGroups, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out asset_group.AssetGroups
	for _, g := range r.s.groups {
		if g.UserID == userID {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r memGroupRepo) CreateAssetGroup(_ context.Context, req *asset_group.AssetGroup) (*asset_group.AssetGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g := *req
	g.ID = uuid.New()
	g.CreatedAt = r.s.tick()
	g.UpdatedAt = g.CreatedAt
	r.s.groups[g.ID] = &g
	cp := g
	return &cp, nil
}

func (r memGroupRepo) UpdateAssetGroup(_ context.Context, req *asset_group.AssetGroup) (*asset_group.AssetGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[req.ID]
	if !ok || g.UserID != req.UserID {
		return nil, nil
	}
	g.Name, g.Description, g.UpdatedAt = req.Name, req.Description, r.s.tick()
	cp := *g
	return &cp, nil
}

func (r memGroupRepo) DeleteAssetGroup(_ context.Context, userID, id uuid.UUID) (*asset_group.AssetGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[id]
	if !ok || g.UserID != userID {
		return nil, nil
	}
	delete(r.s.groups, id)
	for _, a := range r.s.assets {
		if a.AssetGroupID != nil && *a.AssetGroupID == id {
			a.AssetGroupID = nil
		}
	}
	return g, nil
}

func (r memGroupRepo) RecomputeTotalSize(_ context.Context, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.recomputeRuns++
	if r.s.recomputeErr != nil {
		return 0, r.s.recomputeErr
	}
	g, ok := r.s.groups[id]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	var sum int64
	for _, a := range r.s.assets {
		if a.AssetGroupID != nil && *a.AssetGroupID == id {
			sum += a.Size
		}
	}
	g.TotalSize = sum
	return sum, nil
}

func (r memGroupRepo) FetchGroupIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for id, g := range r.s.groups {
		if userID == uuid.Nil || g.UserID == userID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type FakeStorage struct {
	UploadFunc func(ctx context.Context, body io.Reader, contentType string, opts s3.UploadOptions) (*s3.UploadResult, error)
	DeleteFunc func(ctx context.Context, providerID string) error

	uploads []s3.UploadOptions
	deletes []string
}

func (f *FakeStorage) Upload(ctx context.Context, body io.Reader, contentType string, opts s3.UploadOptions) (*s3.UploadResult, error) {
	f.uploads = append(f.uploads, opts)
	if f.UploadFunc != nil {
		return f.UploadFunc(ctx, body, contentType, opts)
	}
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return nil, err
	}
	return &s3.UploadResult{
		SecureURL:  f.ResolveURL(opts.Key),
		StoredName: path.Base(opts.Key),
		ByteSize:   n,
		ProviderID: opts.Key,
	}, nil
}

func (f *FakeStorage) Delete(ctx context.Context, providerID string) error {
	f.deletes = append(f.deletes, providerID)
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, providerID)
	}
	return nil
}

func (f *FakeStorage) ResolveURL(providerID string) string { return "https://cdn.test/" + providerID }

type fakePublisher struct {
	mu     sync.Mutex
	events []mq.Event
}

func (p *fakePublisher) Publish(e mq.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return true
}

func (p *fakePublisher) last() mq.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

type spyAggregator struct {
	inner     *Aggregator
	refreshed []uuid.UUID
}

func (s *spyAggregator) Refresh(ctx context.Context, groupID *uuid.UUID) {
	if groupID != nil {
		s.refreshed = append(s.refreshed, *groupID)
	}
	s.inner.Refresh(ctx, groupID)
}

func (s *spyAggregator) ReconcileAll(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.inner.ReconcileAll(ctx, userID)
}

type FakeFamilyRepo struct {
	FetchFamilyFunc   func(ctx context.Context, userID, id uuid.UUID) (*family.Family, error)
	FetchFamiliesFunc func(ctx context.Context, userID uuid.UUID, search string, page, limit int) (family.Families, int64, error)
	CreateFamilyFunc  func(ctx context.Context, req *family.Family) (*family.Family, error)
	UpdateFamilyFunc  func(ctx context.Context, req *family.Family) (*family.Family, error)
	DeleteFamilyFunc  func(ctx context.Context, userID, id uuid.UUID) (*family.Family, error)
}

func (f *FakeFamilyRepo) FetchFamily(ctx context.Context, userID, id uuid.UUID) (*family.Family, error) {
	return f.FetchFamilyFunc(ctx, userID, id)
}

func (f *FakeFamilyRepo) FetchFamilies(ctx context.Context, userID uuid.UUID, search string, page, limit int) (family.Families, int64, error) {
	return f.FetchFamiliesFunc(ctx, userID, search, page, limit)
}

func (f *FakeFamilyRepo) CreateFamily(ctx context.Context, req *family.Family) (*family.Family, error) {
	return f.CreateFamilyFunc(ctx, req)
}

func (f *FakeFamilyRepo) UpdateFamily(ctx context.Context, req *family.Family) (*family.Family, error) {
	return f.UpdateFamilyFunc(ctx, req)
}

func (f *FakeFamilyRepo) DeleteFamily(ctx context.Context, userID, id uuid.UUID) (*family.Family, error) {
	return f.DeleteFamilyFunc(ctx, userID, id)
}

type FakeNotificationRepo struct {
	CreateNotificationFunc func(ctx context.Context, req *notification.Notification) (*notification.Notification, error)
	FetchNotificationsFunc func(ctx context.Context, userID uuid.UUID, page, limit int) (notification.Notifications, int64, error)
	DeleteOlderThanFunc    func(ctx context.Context, before time.Time) (int64, error)
}

func (f *FakeNotificationRepo) CreateNotification(ctx context.Context, req *notification.Notification) (*notification.Notification, error) {
	return f.CreateNotificationFunc(ctx, req)
}

func (f *FakeNotificationRepo) FetchNotifications(ctx context.Context, userID uuid.UUID, page, limit int) (notification.Notifications, int64, error) {
	return f.FetchNotificationsFunc(ctx, userID, page, limit)
}

func (f *FakeNotificationRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	return f.DeleteOlderThanFunc(ctx, before)
}

type FakeMailer struct {
	SendFunc func(ctx context.Context, msg mail.Message) error
	sent     []mail.Message
}

func (f *FakeMailer) Send(ctx context.Context, msg mail.Message) error {
	f.sent = append(f.sent, msg)
	if f.SendFunc != nil {
		return f.SendFunc(ctx, msg)
	}
	return nil
}
