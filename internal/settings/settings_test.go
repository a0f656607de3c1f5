package settings

import (
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

func TestServiceRoundTrip(t *testing.T) {
	db := newTestDB(t)

	svc, err := NewService(db)
	require.NoError(t, err)

	next := Settings{
		SteamAPIKey: "key-123",
		ProxyURL:    "http://127.0.0.1:7890",
		UseProxy:    true,
		AIAPIKey:    "gemini-456",
	}
	require.NoError(t, svc.Update(next))
	assert.Equal(t, next, svc.Get())

	// 重新构造服务，设置从槽位恢复
	reloaded, err := NewService(db)
	require.NoError(t, err)
	assert.Equal(t, next, reloaded.Get())
}

func TestServiceCorruptedSlot(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, kvstore.SetValue(db, kvstore.SettingsKey, "{损坏的JSON"))

	svc, err := NewService(db)
	require.NoError(t, err)
	assert.Equal(t, Settings{}, svc.Get())
}

func TestGetReturnsSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewService(db)
	require.NoError(t, err)
	require.NoError(t, svc.Update(Settings{SteamAPIKey: "original"}))

	snapshot := svc.Get()
	snapshot.SteamAPIKey = "篡改"
	assert.Equal(t, "original", svc.Get().SteamAPIKey)
}
