package game

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gamevault/gamevault-backend/internal/platform/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, kvstore.PrimeDB(db))
	return db
}

func slotGames(t *testing.T, db *gorm.DB) []Game {
	t.Helper()
	raw, err := kvstore.GetValue(db, kvstore.LibraryKey)
	require.NoError(t, err)
	var games []Game
	require.NoError(t, json.Unmarshal([]byte(raw), &games))
	return games
}

func TestStoreLoad(t *testing.T) {
	t.Run("槽位为空时载入示例数据并写回", func(t *testing.T) {
		db := newTestDB(t)
		store := NewStore(db)
		require.NoError(t, store.Load())

		assert.Equal(t, 3, store.Count())
		assert.Equal(t, ids(SampleLibrary()), ids(slotGames(t, db)))
	})

	t.Run("槽位内容损坏时替换为示例数据", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, kvstore.SetValue(db, kvstore.LibraryKey, "{这不是JSON"))

		store := NewStore(db)
		require.NoError(t, store.Load())

		assert.Equal(t, 3, store.Count())
		assert.Equal(t, ids(SampleLibrary()), ids(slotGames(t, db)))
	})

	t.Run("已有数据时原样加载", func(t *testing.T) {
		db := newTestDB(t)
		saved := []Game{{ID: "x", Title: "只有一条", Status: StatusBacklog, Genres: []string{}}}
		data, err := json.Marshal(saved)
		require.NoError(t, err)
		require.NoError(t, kvstore.SetValue(db, kvstore.LibraryKey, string(data)))

		store := NewStore(db)
		require.NoError(t, store.Load())

		assert.Equal(t, 1, store.Count())
		g, ok := store.Get("x")
		assert.True(t, ok)
		assert.Equal(t, "只有一条", g.Title)
	})
}

func TestStoreCRUD(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	require.NoError(t, store.Load())

	t.Run("创建分配ID和收录时间并插入到最前", func(t *testing.T) {
		created := store.Create(Game{Title: "新游戏", Status: StatusWishlist})
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.AddedAt)
		assert.NotNil(t, created.Genres)

		snapshot := store.Snapshot()
		assert.Equal(t, created.ID, snapshot[0].ID)
		// 每次修改后槽位里都是完整数组
		assert.Equal(t, ids(snapshot), ids(slotGames(t, db)))
	})

	t.Run("更新保留ID和收录时间", func(t *testing.T) {
		original, ok := store.Get("1")
		require.True(t, ok)

		updated, err := store.Update("1", Game{
			ID:      "试图篡改",
			Title:   original.Title,
			Status:  StatusDropped,
			AddedAt: "2000-01-01T00:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "1", updated.ID)
		assert.Equal(t, original.AddedAt, updated.AddedAt)
		assert.Equal(t, StatusDropped, updated.Status)
	})

	t.Run("更新不存在的ID返回错误", func(t *testing.T) {
		_, err := store.Update("不存在", Game{Title: "x"})
		assert.Error(t, err)
	})

	t.Run("删除后记录消失且槽位同步", func(t *testing.T) {
		before := store.Count()
		require.NoError(t, store.Delete("1"))
		assert.Equal(t, before-1, store.Count())
		_, ok := store.Get("1")
		assert.False(t, ok)
		assert.Len(t, slotGames(t, db), before-1)

		assert.Error(t, store.Delete("1"))
	})

	t.Run("批量追加保持批次内顺序且不去重", func(t *testing.T) {
		batch := []Game{
			{ID: "i1", Title: "同一款", Status: StatusBacklog, Genres: []string{}},
			{ID: "i2", Title: "同一款", Status: StatusBacklog, Genres: []string{}},
		}
		before := store.Count()
		store.AddBatch(batch)

		snapshot := store.Snapshot()
		assert.Equal(t, before+2, len(snapshot))
		assert.Equal(t, "i1", snapshot[0].ID)
		assert.Equal(t, "i2", snapshot[1].ID)
	})
}

func TestStoreSnapshotIsolation(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	require.NoError(t, store.Load())

	snapshot := store.Snapshot()
	snapshot[0].Title = "就地篡改"
	snapshot[0].Genres[0] = "篡改标签"

	fresh, ok := store.Get(snapshot[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "就地篡改", fresh.Title)
	assert.NotEqual(t, "篡改标签", fresh.Genres[0])
}

func TestStoreSerializedLibrary(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	require.NoError(t, store.Load())

	data, err := store.SerializedLibrary()
	require.NoError(t, err)

	var games []Game
	require.NoError(t, json.Unmarshal([]byte(data), &games))
	assert.Equal(t, ids(store.Snapshot()), ids(games))
}
