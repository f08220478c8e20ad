package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "pim-api/internal/domain/asset"
)

var assetCols = []string{"id", "user_id", "name", "file_name", "storage_key", "mime_type", "size", "asset_group_id", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchAsset(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	owner, id, group := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM assets\s+WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, owner).
		WillReturnRows(mock.NewRows(assetCols).
			AddRow(id, owner, "Logo", "logo.png", "pim/logo.png", "image/png", int64(1536), &group, now, now))

	got, err := repo.FetchAsset(context.Background(), owner, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Logo", got.Name)
	assert.Equal(t, int64(1536), got.Size)
	require.NotNil(t, got.AssetGroupID)
	assert.Equal(t, group, *got.AssetGroupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchAsset_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	owner, id := uuid.New(), uuid.New()
	mock.ExpectQuery(`FROM assets`).WithArgs(id, owner).WillReturnRows(mock.NewRows(assetCols))

	got, err := repo.FetchAsset(context.Background(), owner, id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_FetchAssets(t *testing.T) {
	mock := newMock(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewRepository(mock)

	owner := uuid.New()
	now := time.Now()
	f := domain.Filter{UserID: owner, HasGroup: ptr(false), Page: 2, Limit: 10}

	rows := mock.NewRows(assetCols)
	for i := 0; i < 5; i++ {
		rows.AddRow(uuid.New(), owner, "a", "a.png", "k", "image/png", int64(i), nil, now, now)
	}

	mock.ExpectQuery(`(?s)SELECT id, user_id.*WHERE user_id = \$1 AND asset_group_id IS NULL ORDER BY created_at DESC, id DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(owner, 10, 10).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM assets\s+WHERE user_id = \$1 AND asset_group_id IS NULL$`).
		WithArgs(owner).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(15)))

	items, total, err := repo.FetchAssets(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, int64(15), total)
	assert.Nil(t, items[0].AssetGroupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchAssets_CountError(t *testing.T) {
	mock := newMock(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewRepository(mock)

	owner := uuid.New()
	mock.ExpectQuery(`SELECT id, user_id`).WithArgs(owner, 10, 0).WillReturnRows(mock.NewRows(assetCols))
	mock.ExpectQuery(`SELECT COUNT`).WithArgs(owner).WillReturnError(errors.New("boom"))

	_, _, err := repo.FetchAssets(context.Background(), domain.Filter{UserID: owner, Page: 1, Limit: 10})
	assert.Error(t, err)
}

func TestRepository_CreateAsset(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	owner, id := uuid.New(), uuid.New()
	now := time.Now()
	req := &domain.Asset{UserID: owner, Name: "Logo", FileName: "logo.png", StorageKey: "k", MimeType: "image/png", Size: 10}

	mock.ExpectQuery(`INSERT INTO assets`).
		WithArgs(owner, "Logo", "logo.png", "k", "image/png", int64(10), (*uuid.UUID)(nil)).
		WillReturnRows(mock.NewRows(assetCols).AddRow(id, owner, "Logo", "logo.png", "k", "image/png", int64(10), nil, now, now))

	got, err := repo.CreateAsset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAsset(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	owner, id, group := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`UPDATE assets`).
		WithArgs(id, owner, "Renamed", &group).
		WillReturnRows(mock.NewRows(assetCols).AddRow(id, owner, "Renamed", "logo.png", "k", "image/png", int64(10), &group, now, now))

	got, err := repo.UpdateAsset(context.Background(), &domain.Asset{ID: id, UserID: owner, Name: "Renamed", AssetGroupID: &group})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, group, *got.AssetGroupID)
}

func TestRepository_DeleteAsset(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	owner, id := uuid.New(), uuid.New()

	mock.ExpectQuery(`DELETE FROM assets`).WithArgs(id, owner).WillReturnRows(mock.NewRows(assetCols))

	got, err := repo.DeleteAsset(context.Background(), owner, id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
